// Package commands implements the CLI commands for the equip toolbox.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"
	"go.trai.ch/equip/internal/build"
	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/ui/banner"
)

// CLI represents the command line interface for equip.
type CLI struct {
	app        Application
	settings   domain.Settings
	rootCmd    *cobra.Command
	noBanner   bool
	bannerOnce sync.Once
}

// Application represents the application logic interface.
type Application interface {
	Hash(ctx context.Context, req domain.HashRequest) (string, error)
	RandomNumbers(ctx context.Context, req domain.RandomRequest) ([]string, error)
}

// New creates a new CLI instance with the given app. Settings provide the
// flag defaults and whether the banner is shown.
func New(a Application, settings domain.Settings) *CLI {
	rootCmd := &cobra.Command{
		Use:           domain.AppName,
		Short:         "The developers equipment toolbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:      a,
		settings: settings,
		rootCmd:  rootCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&c.noBanner, "no-banner", false, "Do not print the banner")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		c.printBanner(cmd.ErrOrStderr())
	}

	rootCmd.AddCommand(c.newHashCmd())
	rootCmd.AddCommand(c.newRandCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
// Errors other than domain.ErrRequestFailed come from parsing the command
// line and match domain.ErrInvalidUsage.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if err != nil && !errors.Is(err, domain.ErrRequestFailed) {
		return &usageError{err: err}
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) printBanner(w io.Writer) {
	if c.noBanner || !c.settings.Banner {
		return
	}
	c.bannerOnce.Do(func() {
		_ = banner.Print(w)
	})
}

// showHelp is the RunE of command groups; it prints the group usage.
func showHelp(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}

// usageError marks a command line error.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func (e *usageError) Is(target error) bool {
	return target == domain.ErrInvalidUsage
}
