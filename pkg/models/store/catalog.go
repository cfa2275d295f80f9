package store

// CatalogDocument is the persisted form of a catalog, shared by YAML files and SQL tables.
type CatalogDocument struct {
	Categories    []CategoryRecord     `mapstructure:"categories" json:"categories" yaml:"categories"`
	Months        []MonthRecord        `mapstructure:"months" json:"months" yaml:"months"`
	Bottlenecks   []BottleneckGroup    `mapstructure:"bottlenecks" json:"bottlenecks" yaml:"bottlenecks"`
	Neighborhoods []NeighborhoodRecord `mapstructure:"neighborhoods" json:"neighborhoods" yaml:"neighborhoods"`
}

type CategoryRecord struct {
	Name               string  `mapstructure:"name" json:"name" yaml:"name"`
	BaseCount          int     `mapstructure:"base_count" json:"base_count" yaml:"base_count"`
	AvgDurationDays    float64 `mapstructure:"avg_duration_days" json:"avg_duration_days" yaml:"avg_duration_days"`
	SuccessRatePercent float64 `mapstructure:"success_rate_percent" json:"success_rate_percent" yaml:"success_rate_percent"`
}

type MonthRecord struct {
	Month     string `mapstructure:"month" json:"month" yaml:"month"`
	Submitted int    `mapstructure:"submitted" json:"submitted" yaml:"submitted"`
	Approved  int    `mapstructure:"approved" json:"approved" yaml:"approved"`
	Rejected  int    `mapstructure:"rejected" json:"rejected" yaml:"rejected"`
}

// BottleneckGroup keeps category keys as values; viper lowercases map keys.
type BottleneckGroup struct {
	Category string             `mapstructure:"category" json:"category" yaml:"category"`
	Entries  []BottleneckRecord `mapstructure:"entries" json:"entries" yaml:"entries"`
}

type BottleneckRecord struct {
	Issue        string `mapstructure:"issue" json:"issue" yaml:"issue"`
	BaseCount    int    `mapstructure:"base_count" json:"base_count" yaml:"base_count"`
	AvgDelayDays int    `mapstructure:"avg_delay_days" json:"avg_delay_days" yaml:"avg_delay_days"`
}

type NeighborhoodRecord struct {
	Name        string `mapstructure:"name" json:"name" yaml:"name"`
	BasePermits int    `mapstructure:"base_permits" json:"base_permits" yaml:"base_permits"`
	AvgDays     int    `mapstructure:"avg_days" json:"avg_days" yaml:"avg_days"`
	Trend       string `mapstructure:"trend" json:"trend" yaml:"trend"`
}
