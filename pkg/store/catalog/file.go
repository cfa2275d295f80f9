package catalog

import (
	"fmt"

	"github.com/de-tools/permit-atlas/pkg/adapters"
	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"github.com/de-tools/permit-atlas/pkg/models/store"
	"github.com/spf13/viper"
)

// LoadFile reads a catalog document (YAML, JSON or TOML, by extension).
func LoadFile(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: failed to read catalog file: %w", domain.ErrCatalogLoad, err)
	}

	var doc store.CatalogDocument
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse catalog file: %w", domain.ErrCatalogLoad, err)
	}
	return New(adapters.MapStoreCatalogToDomain(doc))
}
