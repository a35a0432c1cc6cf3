// Package libinspect resolves a shared library name to the path it was
// actually loaded from, for filling in the Path of a
// FileReaderDescriptor's Libraries entries. No built-in descriptor
// calls it; their Libraries entries carry an empty Path.
// Resolution is platform-specific and its failure is never fatal:
// callers get an empty path rather than an error.
package libinspect

// Resolve returns the absolute path name was loaded from, or "" if it
// could not be determined (the library is not loaded, or resolution is
// unsupported on this platform).
func Resolve(name string) string {
	return resolve(name)
}
