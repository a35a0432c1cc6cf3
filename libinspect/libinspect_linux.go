//go:build linux

package libinspect

import (
	"bufio"
	"os"
	"strings"
)

// resolve walks /proc/self/maps, the portable analogue of an ELF
// dlopen/link_map walk: every shared object mapped into this process
// appears there with its full resolved path. It returns the first
// mapped path whose base name contains name.
func resolve(name string) string {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.IndexByte(line, '/')
		if idx < 0 {
			continue
		}
		path := line[idx:]
		base := path[strings.LastIndexByte(path, '/')+1:]
		if strings.Contains(base, name) {
			return path
		}
	}
	return ""
}
