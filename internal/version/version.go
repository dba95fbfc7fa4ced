// Package version provides build information for mskctl and the client user agent.
package version

import "runtime"

// These variables are set via ldflags during build time
var (
	// Version is the semantic version of mskgo
	Version = "dev"

	// GitCommit is the git commit SHA
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// Info contains all version information
type Info struct {
	Version    string `json:"version" yaml:"version"`
	GitCommit  string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate  string `json:"buildDate" yaml:"buildDate"`
	GoVersion  string `json:"goVersion" yaml:"goVersion"`
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`
}

// GetInfo returns all version information. apiVersion is the MSK model version
// the client was generated from.
func GetInfo(apiVersion string) Info {
	return Info{
		Version:    GetVersion(),
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		APIVersion: apiVersion,
	}
}
