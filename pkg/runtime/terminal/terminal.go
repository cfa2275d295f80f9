package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/permit-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/permit-atlas/pkg/services/config"
	"github.com/de-tools/permit-atlas/pkg/store/catalog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry config.Registry
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry config.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

// Execute runs the command line; ctx should carry the logger.
func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "permit-atlas",
		Short:         "Permit analytics over baseline catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(commands.NewReportCmd(cli.loadCatalog))
	cmd.AddCommand(commands.NewCategoriesCmd(cli.loadCatalog))
	cmd.AddCommand(commands.NewWindowsCmd(cli.loadCatalog))
	cmd.AddCommand(commands.NewCatalogCmd(cli.loadCatalog))

	return cmd
}

func (cli *CLI) loadCatalog(ctx context.Context, name string) (*catalog.Catalog, error) {
	profile, err := cli.registry.GetProfile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile: %w", err)
	}
	return catalog.Load(ctx, profile)
}
