package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print lawnet and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return
		}
		info, _ := debug.ReadBuildInfo()
		fmt.Fprintln(cmd.OutOrStdout(), versionLine(version, info))
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
	rootCmd.AddCommand(versionCmd)
}

// versionLine formats the version with the Go runtime, platform and, when
// the binary was built from a checkout, the VCS revision.
func versionLine(v string, info *debug.BuildInfo) string {
	line := fmt.Sprintf("lawnet %s (%s %s/%s)", v, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if rev := revision(info); rev != "" {
		line += " rev " + rev
	}
	return line
}

// revision returns the short VCS revision, marked dirty when the tree was
// modified at build time.
func revision(info *debug.BuildInfo) string {
	if info == nil {
		return ""
	}
	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}
