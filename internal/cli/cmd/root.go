package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DobroslavRadosavljevic/hsize/internal/config"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hsize",
		Short:         "Convert between byte counts and human-readable sizes",
		Long:          "hsize converts raw byte counts to human-readable size strings and back, across SI, IEC, JEDEC and French octet unit systems, with locale-aware rendering and free-text extraction.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags available to all subcommands; defaults may come from
	// the config file or HSIZE_* environment via viper.
	root.PersistentFlags().String("system", "iec", "Unit system: si, iec, jedec, french")
	root.PersistentFlags().String("locale", "", "BCP 47 locale for number rendering and parsing")
	root.PersistentFlags().Bool("si", false, "Read ambiguous units (KB, MB) as 1000-based")

	_ = config.Init(root)

	root.AddCommand(newFormatCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newGtCmd())
	root.AddCommand(newLtCmd())
	root.AddCommand(newTuiCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

// Persistent settings resolve flag > env/config > default through viper.
func systemSetting() string { return viper.GetString("system") }
func localeSetting() string { return viper.GetString("locale") }
func siSetting() bool       { return viper.GetBool("si") }
