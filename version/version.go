// Package version holds the build version, overridden at link time with
// -ldflags "-X github.com/battlesnakeio/lightcycles/version.Version=...".
package version

// Version of the build.
var Version = "dev"
