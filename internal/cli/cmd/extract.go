package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DobroslavRadosavljevic/hsize"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "extract [text]",
		Short:         "Find every byte-size occurrence in free text",
		Long:          "Extract scans the given text (or stdin when no argument is supplied) and prints every byte-size occurrence with its offsets and parsed byte count.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return &ExitError{Code: ExitFailure, Err: err}
				}
				text = string(b)
			}
			matches := hsize.Extract(text)
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				b, err := json.Marshal(matches)
				if err != nil {
					return &ExitError{Code: ExitFailure, Err: err}
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\t%s\t%s\n",
					m.Start, m.End, m.Input, strconv.FormatFloat(m.Bytes, 'f', -1, 64))
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Emit matches as JSON")
	return cmd
}
