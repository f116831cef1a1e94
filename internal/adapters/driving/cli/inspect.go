package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "List drawings and external references of a workbook",
	Long: `Reads an XLSX workbook and lists its drawing parts and every relationship
whose target lives outside the package. Nothing is modified or fetched.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if patcher == nil {
		return errors.New("patch service not configured")
	}

	ins, err := patcher.Inspect(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	st := stylesFor(cmd.OutOrStdout())

	cmd.Println(st.Title.Render("Drawings"))
	if len(ins.Drawings) == 0 {
		cmd.Println(st.Muted.Render("  (none)"))
	}
	for _, d := range ins.Drawings {
		cmd.Printf("  %s\n", d)
	}
	cmd.Println()

	cmd.Println(st.Title.Render("External references"))
	if len(ins.External) == 0 {
		cmd.Println(st.Muted.Render("  (none)"))
		return nil
	}

	owners := make([]string, 0, len(ins.External))
	for owner := range ins.External {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	for _, owner := range owners {
		cmd.Printf("  %s\n", st.Label.Render(owner))
		for _, rel := range ins.External[owner] {
			cmd.Printf("    %s  %s\n", rel.ID, rel.Target)
		}
	}
	return nil
}
