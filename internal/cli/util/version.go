package util

import (
	"fmt"
	"io"
	"runtime"

	"github.com/deskscript/gutils/internal/build"
	"github.com/deskscript/gutils/internal/cli/shared"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display version, commit, build date, and Go version information for gutils",
		Example: `  # Show version info
  gutils version

  # Plain output (for scripts)
  gutils version --plain`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if plain, _ := cmd.Flags().GetBool("plain"); plain {
				printPlainVersion(out)
				return
			}
			printPrettyVersion(out)
		},
	}
	cmd.Flags().Bool("plain", false, "Plain output without formatting")
	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(out io.Writer) {
	fmt.Fprintf(out, "gutils %s\n", build.Version)
	fmt.Fprintf(out, "commit: %s\n", build.Commit)
	fmt.Fprintf(out, "built: %s\n", build.BuildDate)
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints a labelled, colored version block
func printPrettyVersion(out io.Writer) {
	c := shared.NewColors(out)

	fmt.Fprintf(out, "%s %s\n", c.Cyan("gutils"), build.Version)
	fmt.Fprintln(out, c.Dim(shared.Tagline))
	fmt.Fprintln(out)

	info := []struct {
		label string
		value string
	}{
		{"Commit", truncateCommit(build.Commit)},
		{"Built", build.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}
	for _, item := range info {
		fmt.Fprintf(out, "  %-9s %s\n", item.label+":", item.value)
	}
	if build.IsDevBuild() {
		fmt.Fprintln(out, c.Yellow("  development build"))
	}
}

// truncateCommit shortens commit hash to 7 characters
func truncateCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
