// Package buildinfo holds version information injected at build time via ldflags:
//
//	-X github.com/t4skforce/threatsim/internal/buildinfo.Version=v0.2.0
package buildinfo

var (
	Version    = "dev"
	Codename   = "Decoy"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
