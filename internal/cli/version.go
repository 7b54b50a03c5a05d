package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version and Commit are set at build time via -ldflags.
//
//	go build -ldflags "-X github.com/scbrown/codename/internal/cli.Version=v1.0.0
//	  -X github.com/scbrown/codename/internal/cli.Commit=48cae1d"
var (
	Version = ""
	Commit  = ""
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and commit hash",
		Long: `Print the codename version string. Same output as --version.

When built from a tagged release, shows the release version.
Otherwise shows "dev". The git commit hash is included when known.

Examples:
  codename v1.0.0 (48cae1d)
  codename dev (48cae1d)`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

// versionString formats the version line shown by --version and "version".
func versionString() string {
	v := Version
	if v == "" {
		v = "dev"
	}

	c := Commit
	if c == "" {
		c = commitFromBuildInfo()
	}

	if c != "" {
		return fmt.Sprintf("codename %s (%s)", v, shortCommit(c))
	}
	return fmt.Sprintf("codename %s", v)
}

// commitFromBuildInfo extracts vcs.revision from Go's embedded build info.
func commitFromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// shortCommit returns the first 7 characters of a commit hash.
func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
