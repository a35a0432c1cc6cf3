package libinspect

import "testing"

func TestResolveUnknownNameReturnsEmpty(t *testing.T) {
	if got := Resolve("definitely-not-a-loaded-library-xyz"); got != "" {
		t.Errorf("Resolve of a name that cannot be loaded = %q, want empty", got)
	}
}
