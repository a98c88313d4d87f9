package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DobroslavRadosavljevic/hsize"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "parse <size>...",
		Short:         "Parse human-readable sizes into byte counts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := hsize.ParseOptions{
				PreferSI: siSetting(),
				Locale:   localeSetting(),
			}
			opts.Bits, _ = cmd.Flags().GetBool("bits")
			opts.Strict, _ = cmd.Flags().GetBool("strict")
			for _, arg := range args {
				bytes, err := hsize.Parse(arg, opts)
				if err != nil {
					return &ExitError{Code: ExitFailure, Err: err}
				}
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(bytes, 'f', -1, 64))
			}
			return nil
		},
	}
	cmd.Flags().Bool("bits", false, "Treat values as bits")
	cmd.Flags().Bool("strict", false, "Fail on precision loss instead of warning")
	return cmd
}
