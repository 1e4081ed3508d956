// Package version exposes the build version, overridden at link time via
// -ldflags "-X github.com/cadrebook/cadrebook-cli/internal/version.Version=v1.2.3".
package version

var Version = "dev"
