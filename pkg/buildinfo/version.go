// Package buildinfo exposes the version stamped into the showcase binary.
//
// Values are injected with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/showcase/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/showcase/pkg/buildinfo.Commit=$(git rev-parse HEAD)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// UserAgent is sent with every outgoing API request. GitHub rejects
// requests without one.
func UserAgent() string {
	return "showcase/" + Version
}
