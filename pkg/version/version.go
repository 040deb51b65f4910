// Package version holds the build version, overridden at release time via
// -ldflags "-X github.com/maxvaer/webrecon/pkg/version.Version=...".
package version

var Version = "dev"
