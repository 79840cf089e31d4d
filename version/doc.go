// Package version exposes build information for the analytics CLI.
//
// Version, commit and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/analytics/version.Version=1.2.0" ./cmd/analytics
//
// Anything left unset falls back to the VCS stamp the Go toolchain embeds.
package version
