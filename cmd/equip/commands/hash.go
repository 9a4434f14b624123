package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/equip/internal/core/domain"
)

// inputFlags are the input source flags shared by every hash subcommand.
type inputFlags struct {
	file   string
	secret bool
	prompt bool
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.file, "file", "f", "", "Read the text to hash from a file")
	fs.BoolVarP(&f.secret, "secret", "s", false, "Hide typed characters when prompting")
	fs.BoolVar(&f.prompt, "prompt", false, "Prompt for the text even when other input is given")
}

func (f *inputFlags) spec(args []string) domain.InputSpec {
	return domain.InputSpec{
		Input:       domain.TokensInput(args),
		File:        f.file,
		ForcePrompt: f.prompt,
		Secret:      f.secret,
	}
}

func (c *CLI) newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Hash text, files or prompted input",
		Args:  cobra.NoArgs,
		RunE:  showHelp,
	}

	for _, algo := range domain.DigestAlgorithms() {
		cmd.AddCommand(c.newDigestCmd(algo))
	}
	cmd.AddCommand(c.newBcryptCmd())

	return cmd
}

func (c *CLI) newDigestCmd(algo domain.Algorithm) *cobra.Command {
	var (
		in     inputFlags
		format domain.OutputFormat
	)

	cmd := &cobra.Command{
		Use:   algo.String() + " [text...]",
		Short: fmt.Sprintf("Generate the %s digest of the given input", algo),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.HashRequest{
				Algorithm: algo,
				Format:    format,
				Input:     in.spec(args),
			}
			return c.runHash(cmd, req)
		},
	}

	in.register(cmd.Flags())
	cmd.Flags().VarP(newOutputFormatValue(c.settings.Hash.OutputFormat, &format), "output-format", "o",
		"Output format: binary, hex or base64")

	return cmd
}

func (c *CLI) newBcryptCmd() *cobra.Command {
	var (
		in     inputFlags
		rounds int
	)

	cmd := &cobra.Command{
		Use:   "bcrypt [text...]",
		Short: "Generate a salted bcrypt hash of the given input",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.HashRequest{
				Algorithm: domain.AlgorithmBcrypt,
				Rounds:    rounds,
				Input:     in.spec(args),
			}
			return c.runHash(cmd, req)
		},
	}

	in.register(cmd.Flags())
	cmd.Flags().VarP(newRoundsValue(c.settings.Hash.Rounds, &rounds), "rounds", "r",
		fmt.Sprintf("Cost factor, %d to %d", domain.MinRounds, domain.MaxRounds))

	return cmd
}

func (c *CLI) runHash(cmd *cobra.Command, req domain.HashRequest) error {
	out, err := c.app.Hash(cmd.Context(), req)
	if err != nil {
		return reportFailure(cmd.ErrOrStderr(), err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
