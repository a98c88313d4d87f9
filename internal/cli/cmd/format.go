package cmd

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/AlekSi/pointer"
	"github.com/spf13/cobra"

	"github.com/DobroslavRadosavljevic/hsize"
	"github.com/DobroslavRadosavljevic/hsize/decimal"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "format <bytes>...",
		Short:         "Render byte counts as human-readable sizes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, output, err := assembleFormatOptions(cmd)
			if err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}
			for _, arg := range args {
				line, err := formatArg(arg, opts, output)
				if err != nil {
					return &ExitError{Code: ExitFailure, Err: err}
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.Bool("bits", false, "Render bit units instead of byte units")
	fs.Int("decimals", 2, "Maximum fraction digits")
	fs.String("round", "round", "Rounding mode: round, floor, ceil, trunc")
	fs.Bool("long", false, "Long-form unit names (kibibytes)")
	fs.Bool("signed", false, "Prefix positive values with +")
	fs.Bool("no-space", false, "No separator between value and unit")
	fs.Bool("nbsp", false, "Separate value and unit with a non-breaking space")
	fs.String("spacer", "", "Custom separator between value and unit")
	fs.String("template", "", "Output template with {value} {unit} {longUnit} {bytes} {exponent}")
	fs.Int("fixed-width", 0, "Left-pad output to this width")
	fs.Bool("pad", false, "Keep trailing fraction zeros")
	fs.String("unit", "", "Force a specific unit of the selected system")
	fs.Int("exponent", -1, "Force unit tier 0-8 (-1 selects automatically)")
	fs.String("output", "string", "Output shape: string, array, object, exponent")
	return cmd
}

func assembleFormatOptions(cmd *cobra.Command) (hsize.FormatOptions, string, error) {
	system, err := hsize.ParseSystem(systemSetting())
	if err != nil {
		return hsize.FormatOptions{}, "", err
	}
	roundName, _ := cmd.Flags().GetString("round")
	rounding, err := parseRounding(roundName)
	if err != nil {
		return hsize.FormatOptions{}, "", err
	}

	opts := hsize.FormatOptions{
		System:   system,
		Rounding: rounding,
		Locale:   localeSetting(),
	}
	opts.Bits, _ = cmd.Flags().GetBool("bits")
	opts.Signed, _ = cmd.Flags().GetBool("signed")
	opts.NoSpace, _ = cmd.Flags().GetBool("no-space")
	opts.NonBreakingSpace, _ = cmd.Flags().GetBool("nbsp")
	opts.LongForm, _ = cmd.Flags().GetBool("long")
	opts.Pad, _ = cmd.Flags().GetBool("pad")
	opts.Template, _ = cmd.Flags().GetString("template")
	opts.FixedWidth, _ = cmd.Flags().GetInt("fixed-width")
	opts.Unit, _ = cmd.Flags().GetString("unit")
	if cmd.Flags().Changed("decimals") {
		d, _ := cmd.Flags().GetInt("decimals")
		opts.Decimals = pointer.ToInt(d)
	}
	if cmd.Flags().Changed("spacer") {
		s, _ := cmd.Flags().GetString("spacer")
		opts.Spacer = pointer.ToString(s)
	}
	if e, _ := cmd.Flags().GetInt("exponent"); e >= 0 {
		opts.Exponent = pointer.ToInt(e)
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "string", "array", "object", "exponent":
	default:
		return hsize.FormatOptions{}, "", fmt.Errorf("invalid --output: %q (valid: string|array|object|exponent)", output)
	}
	return opts, output, nil
}

func parseRounding(name string) (decimal.Rounding, error) {
	switch name {
	case "round", "":
		return decimal.RoundHalfUp, nil
	case "floor":
		return decimal.RoundFloor, nil
	case "ceil":
		return decimal.RoundCeil, nil
	case "trunc":
		return decimal.RoundTrunc, nil
	}
	return decimal.RoundHalfUp, fmt.Errorf("invalid --round: %q (valid: round|floor|ceil|trunc)", name)
}

var maxSafeInt = new(big.Int).SetUint64(1<<53 - 1)

func formatArg(arg string, opts hsize.FormatOptions, output string) (string, error) {
	// Integer literals beyond float64 precision go through the big-integer
	// channel so the range check and warning apply.
	if i, ok := new(big.Int).SetString(arg, 10); ok && i.CmpAbs(maxSafeInt) > 0 {
		if output == "string" {
			return hsize.FormatBigInt(i, opts)
		}
		f, _ := new(big.Float).SetInt(i).Float64()
		return renderShape(f, opts, output)
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return "", fmt.Errorf("invalid byte count %q", arg)
	}
	if output == "string" {
		return hsize.Format(f, opts)
	}
	return renderShape(f, opts, output)
}

func renderShape(f float64, opts hsize.FormatOptions, output string) (string, error) {
	det, err := hsize.FormatDetails(f, opts)
	if err != nil {
		return "", err
	}
	switch output {
	case "array":
		b, err := json.Marshal([]any{det.Value, det.Unit})
		return string(b), err
	case "object":
		b, err := json.Marshal(det)
		return string(b), err
	default: // exponent
		return strconv.Itoa(det.Exponent), nil
	}
}
