package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DobroslavRadosavljevic/hsize"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "compare <a> <b>",
		Short:         "Compare two sizes, printing -1, 0 or 1",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := hsize.Cmp(args[0], args[1])
			if err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func newGtCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "gt <a> <b>",
		Short:         "Exit 0 when a is larger than b",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := hsize.Gt(args[0], args[1])
			if err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}
			if !ok {
				return &ExitError{Code: ExitFailure}
			}
			return nil
		},
	}
}

func newLtCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "lt <a> <b>",
		Short:         "Exit 0 when a is smaller than b",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := hsize.Lt(args[0], args[1])
			if err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}
			if !ok {
				return &ExitError{Code: ExitFailure}
			}
			return nil
		},
	}
}
