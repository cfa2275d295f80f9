package commands

import (
	"fmt"

	"github.com/de-tools/permit-atlas/pkg/adapters"
	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/permit-atlas/pkg/services/dashboard"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	profile  string
	window   string
	category string
	format   string
	load     CatalogLoader
}

func NewReportCmd(load CatalogLoader) *cobra.Command {
	rc := &ReportCmd{load: load}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print permit analytics for a time window and category",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.profile, "profile", defaultProfile, "Catalog profile to report on")
	cmd.Flags().StringVarP(&rc.window, "window", "w", string(domain.DefaultWindow), "Time window in days (30, 90 or 365)")
	cmd.Flags().StringVarP(&rc.category, "category", "c", domain.AllCategories, "Permit category, or 'all'")
	cmd.Flags().StringVarP(&rc.format, "format", "f", string(export.FormatTable), "Output format (table, json, yaml, csv)")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	format, err := export.ParseFormat(rc.format)
	if err != nil {
		return err
	}

	c, err := rc.load(ctx, rc.profile)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	service := dashboard.NewService(c, nil)
	report, err := service.Report(ctx, domain.FilterSelection{
		Window:   domain.Window(rc.window),
		Category: rc.category,
	})
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	return export.Render(cmd.OutOrStdout(), format, adapters.MapReportDomainToApi(report))
}
