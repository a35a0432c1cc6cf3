//go:build !linux

package libinspect

// resolve is a stub on platforms without a /proc/self/maps-equivalent
// available to this package: resolution always reports unknown, per
// spec's "absence must not cause initialization to fail" requirement.
func resolve(name string) string {
	return ""
}
