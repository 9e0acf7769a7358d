package bashglob

import (
	"os"
	"os/exec"
	"sync"
)

// Well-known bash locations, probed in order before falling back to a
// PATH lookup.
var bashProbes = []string{
	"/usr/local/bin/bash",
	"/bin/bash",
}

var (
	bashPathOnce sync.Once
	bashPath     string
)

// BashPath returns the bash executable used for matching. Resolution
// happens once per process and the result is shared by all subsequent
// calls; it is never invalidated.
func BashPath() string {
	bashPathOnce.Do(func() {
		bashPath = resolveBashPath()
	})
	return bashPath
}

func resolveBashPath() string {
	for _, p := range bashProbes {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	if p, err := exec.LookPath("bash"); err == nil {
		return p
	}
	// Let the spawn fail and report it through the error policy.
	return "bash"
}
