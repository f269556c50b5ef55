package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teranos/cegconf/registry"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, "dev", info.Version)
	assert.Len(t, info.Registry, 12)
}

func TestRegistryDigest(t *testing.T) {
	assert.Equal(t, RegistryDigest(), RegistryDigest())
	assert.NotEqual(t, "unknown", RegistryDigest())

	data, err := registry.Encode(registry.Defaults(), registry.FormatJSON)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "v1.2.0", CommitHash: "0123456789abcdef", BuildTime: "2026-01-02", Registry: "abcdef012345"}
	assert.Equal(t, "cegconf v1.2.0 (commit 0123456, built 2026-01-02, registry abcdef012345)", info.String())
	assert.Equal(t, "0123456", info.Short())

	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}
