// Package buildinfo holds the version stamped into the pcba binary.
//
// The variables are overridden with ldflags at release time:
//
//	go build -ldflags "-X github.com/matzehuels/pcba/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/pcba/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/pcba/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/pcba
package buildinfo

import "fmt"

var (
	Version = "dev"     // release tag
	Commit  = "none"    // git commit
	Date    = "unknown" // build time, UTC
)

// String returns the build information on one line.
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return "{{.Name}} version " + String() + "\n"
}
