// Package version reports build metadata and the registry the binary was
// compiled with, so an exported config.ts can be traced back to a build.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"

	"github.com/teranos/cegconf/registry"
)

// Set at build time:
//
//	-ldflags "-X github.com/teranos/cegconf/version.Version=v1.2.0 -X ...CommitHash=$(git rev-parse HEAD)"
var (
	Version    = "dev"
	CommitHash = "dev"
	BuildTime  = "unknown"
)

// Info is what `cegconf version` prints.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Registry   string `json:"registry"` // digest of the compiled registry values
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Registry:   RegistryDigest(),
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// RegistryDigest fingerprints the compiled registry: the first 12 hex
// digits of the SHA-256 of its JSON export. Two binaries with the same
// digest hand out the same ids and defaults.
func RegistryDigest() string {
	data, err := registry.Encode(registry.Defaults(), registry.FormatJSON)
	if err != nil {
		return "unknown"
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:12]
}

func (i Info) String() string {
	return fmt.Sprintf("cegconf %s (commit %s, built %s, registry %s)", i.Version, i.Short(), i.BuildTime, i.Registry)
}

// Short returns the abbreviated commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
