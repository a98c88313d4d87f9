package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DobroslavRadosavljevic/hsize/internal/ui"
)

func newTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "tui [size]",
		Short:         "Interactive converter",
		Long:          "Opens an interactive prompt that converts the entered size into every unit system as you type.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return &ExitError{Code: ExitFailure, Err: errors.New("tui requires a terminal; use 'hsize format' or 'hsize parse' instead")}
			}
			return ui.Run(cmd.Context(), strings.Join(args, " "))
		},
	}
}
