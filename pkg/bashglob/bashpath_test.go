package bashglob

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBashPathMemoized(t *testing.T) {
	first := BashPath()
	second := BashPath()

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestResolveBashPathProbeOrder(t *testing.T) {
	p := resolveBashPath()
	assert.NotEmpty(t, p)

	// When a probe location exists, resolution must prefer it over the
	// PATH fallback
	for _, probe := range bashProbes {
		if info, err := os.Stat(probe); err == nil && !info.IsDir() {
			assert.Equal(t, probe, p)
			return
		}
	}
}
