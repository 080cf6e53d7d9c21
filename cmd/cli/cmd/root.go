// Package cmd provides the CLI commands for proposal-pricing.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"proposal-pricing/core/display"
	"proposal-pricing/core/ui"
	"proposal-pricing/internal/config"
	"proposal-pricing/internal/logging"
)

// Version is the tool version
const Version = "0.1.0"

// skipConfigLoad marks commands that run on the default configuration
// instead of reading the config file.
const skipConfigLoad = "skip-config-load"

// rootOptions is shared by every subcommand
type rootOptions struct {
	cfgFile string
	verbose bool
	cfg     *config.Config

	// newBrowser creates the display used for --open
	newBrowser func() display.Display
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{
		newBrowser: func() display.Display { return display.NewBrowser() },
	})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "proposal-pricing",
		Short: "Price a project as a set of delivery tiers",
		Long: `proposal-pricing turns a daily rate, a base duration and a few business
factors into seven priced proposals, from a discounted long-term option
to an executive rush, with the platform commission built into the
client prices and an internal net-income breakdown.

Examples:
  proposal-pricing quote --rate 1000000 --days 10 --fee 20
  proposal-pricing quote --inputs proposal.hcl --format html --open
  proposal-pricing quote -i --locale fa
  proposal-pricing tiers`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.proposal-pricing.json)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(newQuoteCmd(opts))
	rootCmd.AddCommand(newTiersCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI; an interrupt cancels any pending prompt
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer logging.Sync()
	return execute(ctx, NewRootCmd())
}

// execute runs rootCmd and reports a failure on its error stream
func execute(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		ui.NewWriter(rootCmd.ErrOrStderr(), config.Get().Output.NoColor).Error("%v", err)
	}
	return err
}

func (o *rootOptions) initConfig(cmd *cobra.Command) error {
	cfg := config.Default()
	if cmd.Annotations[skipConfigLoad] == "" {
		path := o.cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Initialize logging
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Warn("Falling back to default logging", zap.String("output", cfg.Logging.Output), zap.Error(err))
	}

	config.Set(cfg)
	o.cfg = cfg
	return nil
}

// newVersionCmd prints version information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "proposal-pricing version %s\n", Version)
		},
	}
}
