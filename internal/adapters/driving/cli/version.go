package cli

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
)

// archiveBackend names the codec cmd/sheetstrike wires for containers.
const archiveBackend = "zip (mholt/archiver/v3)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build details",
	Run: func(cmd *cobra.Command, _ []string) {
		modes := make([]string, 0, len(domain.AllModes()))
		for _, m := range domain.AllModes() {
			modes = append(modes, string(m))
		}

		cmd.Printf("sheetstrike version %s\n", version)
		cmd.Printf("  modes:   %s\n", strings.Join(modes, ", "))
		cmd.Printf("  archive: %s\n", archiveBackend)
		cmd.Printf("  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
