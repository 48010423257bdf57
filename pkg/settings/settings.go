// Package settings provides build metadata and runtime parameters shared
// by the combox CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "combox"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-dev",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration for a single execution of the application. It
// collects what the flag layer decided before any subsystem starts.
type Run struct {
	MinLogLevel int8
	ConfigPath  string
	IsQuiet     bool
	NoColor     bool
	ExitOnError bool
}

// NewCliParams returns Run parameters with CLI defaults.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		IsQuiet:     false,
		NoColor:     false,
		ExitOnError: true,
	}
}
