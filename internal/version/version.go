// Package version carries build information stamped in via -ldflags.
package version

import "fmt"

// Set with -ldflags "-X github.com/Narturebelle/Narturebelle/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Info is the build information reported by `landing version` and /health.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

// Current returns the build information of the running binary.
func Current() Info {
	return Info{Version: Version, GitCommit: GitCommit, BuildTime: BuildTime}
}

func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.GitCommit, i.BuildTime)
}
