package config

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/permit-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// DefaultProfile is used when no profiles file exists.
var DefaultProfile = domain.CatalogProfile{Name: "default", Source: domain.CatalogSourceBuiltin}

// Registry lists the catalog profiles of an ini file, one section per profile:
//
//	[warehouse]
//	source = duckdb
//	path   = permits.db
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.CatalogProfile, error)
	GetProfile(ctx context.Context, name string) (domain.CatalogProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

// NewRegistryOrDefault falls back to the builtin profile when path does not exist.
func NewRegistryOrDefault(path string) (Registry, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaultRegistry{}, nil
	}
	return NewRegistry(path)
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]domain.CatalogProfile, error) {
	var profiles []domain.CatalogProfile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profile, err := profileFromSection(section)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (domain.CatalogProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return domain.CatalogProfile{}, fmt.Errorf("profile %s not found", name)
	}
	return profileFromSection(section)
}

func profileFromSection(section *ini.Section) (domain.CatalogProfile, error) {
	profile := domain.CatalogProfile{
		Name:   section.Name(),
		Source: domain.CatalogSource(section.Key("source").MustString(string(domain.CatalogSourceBuiltin))),
		Path:   section.Key("path").String(),
		DSN:    section.Key("dsn").String(),
	}

	switch profile.Source {
	case domain.CatalogSourceBuiltin:
	case domain.CatalogSourceYAML, domain.CatalogSourceDuckDB:
		if profile.Path == "" {
			return domain.CatalogProfile{}, fmt.Errorf("profile %s: %s source requires a path", profile.Name, profile.Source)
		}
	case domain.CatalogSourcePostgres:
		if profile.DSN == "" {
			return domain.CatalogProfile{}, fmt.Errorf("profile %s: postgres source requires a dsn", profile.Name)
		}
	default:
		return domain.CatalogProfile{}, fmt.Errorf("profile %s: unknown source %q", profile.Name, profile.Source)
	}
	return profile, nil
}

type defaultRegistry struct{}

func (defaultRegistry) GetProfiles(_ context.Context) ([]domain.CatalogProfile, error) {
	return []domain.CatalogProfile{DefaultProfile}, nil
}

func (defaultRegistry) GetProfile(_ context.Context, name string) (domain.CatalogProfile, error) {
	if name != DefaultProfile.Name {
		return domain.CatalogProfile{}, fmt.Errorf("profile %s not found", name)
	}
	return DefaultProfile, nil
}
