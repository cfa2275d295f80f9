package commands

import (
	"context"

	"github.com/de-tools/permit-atlas/pkg/store/catalog"
)

// CatalogLoader builds the catalog of a named profile.
type CatalogLoader func(ctx context.Context, profile string) (*catalog.Catalog, error)

const defaultProfile = "default"
