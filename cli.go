package scaffold

import (
	"fmt"

	"github.com/spf13/cobra"
)

type CLIConfig struct {
	Dir        string
	Manifest   string
	Files      []string
	DryRun     bool
	Check      bool
	List       bool
	Quiet      bool
	NoColor    bool
	Completion string
}

var cfg = &CLIConfig{}

var rootCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Write the cluster dashboard project layout.",
	Long: `Create the cluster dashboard source tree (Tailwind config, styles, mock data,
helpers and React components) in the current directory. Existing directories are
kept; every generated file is overwritten.

Example: scaffold -C ./dashboard`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Completion != "" {
			return handleCompletion(cmd)
		}

		if exclusiveModes() > 1 {
			return fmt.Errorf("--dry-run, --check and --list are mutually exclusive")
		}

		app, err := NewApp(&Config{
			Root:     cfg.Dir,
			Manifest: cfg.Manifest,
			Files:    cfg.Files,
			DryRun:   cfg.DryRun,
			Check:    cfg.Check,
			List:     cfg.List,
			Quiet:    cfg.Quiet,
			NoColor:  cfg.NoColor,
		}, cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		_, err = app.Execute()
		return err
	},
}

func exclusiveModes() int {
	n := 0
	for _, on := range []bool{cfg.DryRun, cfg.Check, cfg.List} {
		if on {
			n++
		}
	}
	return n
}

func handleCompletion(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	switch cfg.Completion {
	case "bash":
		return cmd.Root().GenBashCompletion(out)
	case "zsh":
		return cmd.Root().GenZshCompletion(out)
	case "fish":
		return cmd.Root().GenFishCompletion(out, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(out)
	default:
		return fmt.Errorf("unsupported shell for completion: %s", cfg.Completion)
	}
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Completion, "completion", "", "Generate completion script")
	rootCmd.Flags().StringVarP(&cfg.Dir, "dir", "C", ".", "Target root directory")
	rootCmd.Flags().StringVarP(&cfg.Manifest, "manifest", "m", "", "Markdown manifest to apply ('-' for stdin or clipboard)")
	rootCmd.Flags().StringSliceVarP(&cfg.Files, "file", "f", []string{}, "Only write these manifest files")
	rootCmd.Flags().BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Show planned actions")
	rootCmd.Flags().BoolVar(&cfg.Check, "check", false, "Verify the tree against the manifest")
	rootCmd.Flags().BoolVarP(&cfg.List, "list", "l", false, "List manifest entries")
	rootCmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.Flags().BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func Execute() error {
	return rootCmd.Execute()
}
