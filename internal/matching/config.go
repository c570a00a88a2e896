package matching

// Config holds the scoring weights and lists. The values are tuning constants,
// not calibrated against labelled data.
type Config struct {
	TitleWeight  float64 `mapstructure:"title-weight"`
	SkillWeight  float64 `mapstructure:"skill-weight"`
	CompanyBonus float64 `mapstructure:"company-bonus"`
	// Threshold is the minimum skills match percentage for a job to be ranked at all.
	Threshold      float64             `mapstructure:"threshold"`
	KnownCompanies []string            `mapstructure:"known-companies"`
	Expansions     map[string][]string `mapstructure:"expansions"`
	// MaxQueries caps the number of generated search queries.
	MaxQueries int `mapstructure:"max-queries"`
}

func DefaultConfig() Config {
	return Config{
		TitleWeight:    10,
		SkillWeight:    5,
		CompanyBonus:   3,
		Threshold:      90,
		KnownCompanies: []string{"google", "microsoft", "amazon", "apple", "meta", "netflix", "uber", "airbnb"},
		Expansions: map[string][]string{
			"python":     {"django", "flask", "fastapi"},
			"javascript": {"js", "react", "angular", "vue", "node.js"},
			"java":       {"spring", "android"},
			"aws":        {"amazon web services", "cloud"},
			"docker":     {"containerization", "kubernetes"},
		},
		MaxQueries: 5,
	}
}

// withDefaults fills every unset field on its own: zero numbers and nil lists take the default.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TitleWeight == 0 {
		c.TitleWeight = def.TitleWeight
	}
	if c.SkillWeight == 0 {
		c.SkillWeight = def.SkillWeight
	}
	if c.CompanyBonus == 0 {
		c.CompanyBonus = def.CompanyBonus
	}
	if c.Threshold == 0 {
		c.Threshold = def.Threshold
	}
	if c.KnownCompanies == nil {
		c.KnownCompanies = def.KnownCompanies
	}
	if c.Expansions == nil {
		c.Expansions = def.Expansions
	}
	if c.MaxQueries <= 0 {
		c.MaxQueries = def.MaxQueries
	}
	return c
}
