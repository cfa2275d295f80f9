package api

type Selection struct {
	Window          string   `json:"window" yaml:"window"`
	Category        string   `json:"category" yaml:"category"`
	ScaleMultiplier float64  `json:"scale_multiplier" yaml:"scale_multiplier"`
	Categories      []string `json:"categories" yaml:"categories"`
}

type Summary struct {
	TotalPermits        int `json:"total_permits" yaml:"total_permits"`
	AvgProcessingDays   int `json:"avg_processing_days" yaml:"avg_processing_days"`
	SuccessRatePercent  int `json:"success_rate_percent" yaml:"success_rate_percent"`
	CorrectionsEstimate int `json:"corrections_estimate" yaml:"corrections_estimate"`
}

type CategoryStat struct {
	Category           string  `json:"category" yaml:"category"`
	Count              int     `json:"count" yaml:"count"`
	AvgDurationDays    float64 `json:"avg_duration_days" yaml:"avg_duration_days"`
	SuccessRatePercent float64 `json:"success_rate_percent" yaml:"success_rate_percent"`
}

type MonthPoint struct {
	Month     string `json:"month" yaml:"month"`
	Submitted int    `json:"submitted" yaml:"submitted"`
	Approved  int    `json:"approved" yaml:"approved"`
	Rejected  int    `json:"rejected" yaml:"rejected"`
}

type Trend struct {
	PeakSubmitted int          `json:"peak_submitted" yaml:"peak_submitted"`
	Months        []MonthPoint `json:"months" yaml:"months"`
}

type Bottleneck struct {
	Rank         int    `json:"rank" yaml:"rank"`
	Issue        string `json:"issue" yaml:"issue"`
	Count        int    `json:"count" yaml:"count"`
	AvgDelayDays int    `json:"avg_delay_days" yaml:"avg_delay_days"`
}

type Neighborhood struct {
	Name    string `json:"name" yaml:"name"`
	Permits int    `json:"permits" yaml:"permits"`
	AvgDays int    `json:"avg_days" yaml:"avg_days"`
	Trend   string `json:"trend" yaml:"trend"`
}

type Report struct {
	Selection     Selection      `json:"selection" yaml:"selection"`
	Summary       Summary        `json:"summary" yaml:"summary"`
	Categories    []CategoryStat `json:"categories" yaml:"categories"`
	MonthlyTrend  Trend          `json:"monthly_trend" yaml:"monthly_trend"`
	Bottlenecks   []Bottleneck   `json:"bottlenecks" yaml:"bottlenecks"`
	Neighborhoods []Neighborhood `json:"neighborhoods" yaml:"neighborhoods"`
}

type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}
