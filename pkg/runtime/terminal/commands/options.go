package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/de-tools/permit-atlas/pkg/services/dashboard"
	"github.com/spf13/cobra"
)

type OptionsCmd struct {
	profile string
	load    CatalogLoader
	list    func(cmd *cobra.Command, service dashboard.Service) []dashboard.Option
}

func NewCategoriesCmd(load CatalogLoader) *cobra.Command {
	return newOptionsCmd(load, "categories", "List the permit categories of a catalog",
		func(cmd *cobra.Command, service dashboard.Service) []dashboard.Option {
			return service.Categories(cmd.Context())
		})
}

func NewWindowsCmd(load CatalogLoader) *cobra.Command {
	return newOptionsCmd(load, "windows", "List the supported time windows",
		func(cmd *cobra.Command, service dashboard.Service) []dashboard.Option {
			return service.Windows(cmd.Context())
		})
}

func newOptionsCmd(load CatalogLoader, use, short string, list func(*cobra.Command, dashboard.Service) []dashboard.Option) *cobra.Command {
	oc := &OptionsCmd{load: load, list: list}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE:  oc.run,
	}

	cmd.Flags().StringVar(&oc.profile, "profile", defaultProfile, "Catalog profile to read")

	return cmd
}

func (oc *OptionsCmd) run(cmd *cobra.Command, _ []string) error {
	c, err := oc.load(cmd.Context(), oc.profile)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, o := range oc.list(cmd, dashboard.NewService(c, nil)) {
		fmt.Fprintf(w, "%s\t%s\n", o.Value, o.Label)
	}
	return w.Flush()
}
