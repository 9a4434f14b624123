package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/equip/internal/core/domain"
)

func (c *CLI) newRandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Generate random information",
		Args:  cobra.NoArgs,
		RunE:  showHelp,
	}

	cmd.AddCommand(c.newRandNumberCmd())

	return cmd
}

func (c *CLI) newRandNumberCmd() *cobra.Command {
	var (
		integer bool
		repeat  int
		base    domain.NumberBase
	)

	cmd := &cobra.Command{
		Use:   "number [minimum] [maximum]",
		Short: "Generate random numbers within a given range",
		Long: `Generate random numbers within a given range.

If only one argument is given it is treated as the maximum value, with 0 being the minimum.
If two arguments are given, they are treated as minimum and maximum range.
If no arguments are provided, then the default of 0 & 1 will be used.`,
		Args: cobra.MatchAll(cobra.MaximumNArgs(2), numberArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.RandomRequest{
				Integer: integer,
				Repeat:  repeat,
				Base:    base,
			}
			bounds := make([]*float64, len(args))
			for i, arg := range args {
				v, err := parseNumber(arg)
				if err != nil {
					return err
				}
				bounds[i] = &v
			}
			if len(bounds) > 0 {
				req.Min = bounds[0]
			}
			if len(bounds) > 1 {
				req.Max = bounds[1]
			}

			values, err := c.app.RandomNumbers(cmd.Context(), req)
			if err != nil {
				return reportFailure(cmd.ErrOrStderr(), err)
			}
			for _, v := range values {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&integer, "integer", "i", false, "Only generate whole integers")
	cmd.Flags().VarP(newRepeatValue(1, &repeat), "repeat", "r", "Number of values to generate")
	cmd.Flags().VarP(newNumberBaseValue(c.settings.Rand.Format, &base), "format", "f",
		"Output format: binary, octal, decimal, hex or base64")

	return cmd
}

func numberArgs(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		if _, err := parseNumber(arg); err != nil {
			return err
		}
	}
	return nil
}
