package resume

// SkillCategory is a named group of catalog terms. Terms are matched as whole words.
type SkillCategory struct {
	Name  string   `mapstructure:"name" yaml:"name"`
	Terms []string `mapstructure:"terms" yaml:"terms"`
}

// Catalog holds every keyword list the parser consults.
// A Catalog is copied into the Parser at construction and never mutated afterwards.
type Catalog struct {
	Skills []SkillCategory `mapstructure:"skills"`

	EducationHeaders  []string `mapstructure:"education-headers"`
	ExperienceHeaders []string `mapstructure:"experience-headers"`

	RoleKeywords           []string `mapstructure:"role-keywords"`
	TitleEducationKeywords []string `mapstructure:"title-education-keywords"`
	// MinTitleWords and MaxTitleWords bound the word count of an accepted job title.
	MinTitleWords int `mapstructure:"min-title-words"`
	MaxTitleWords int `mapstructure:"max-title-words"`

	CompanyKeywords []string `mapstructure:"company-keywords"`

	DurationEducationKeywords []string `mapstructure:"duration-education-keywords"`
	FullTimeKeywords          []string `mapstructure:"full-time-keywords"`
	ExclusionKeywords         []string `mapstructure:"exclusion-keywords"`

	SummaryIndicators []string `mapstructure:"summary-indicators"`
}

// Skill category names of the default catalog.
const (
	CategoryProgramming = "programming"
	CategoryFrameworks  = "frameworks"
	CategoryDatabases   = "databases"
	CategoryCloud       = "cloud"
	CategoryTools       = "tools"
	CategoryAIML        = "ai_ml"
)

// DefaultCatalog returns a fresh copy of the built-in keyword catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Skills: []SkillCategory{
			{Name: CategoryProgramming, Terms: []string{"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "php", "ruby", "swift", "kotlin"}},
			{Name: CategoryFrameworks, Terms: []string{"react", "angular", "vue", "django", "flask", "spring", "express", "node.js", "asp.net", "laravel"}},
			{Name: CategoryDatabases, Terms: []string{"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "dynamodb", "sqlite", "oracle"}},
			{Name: CategoryCloud, Terms: []string{"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "gitlab"}},
			{Name: CategoryTools, Terms: []string{"git", "jira", "confluence", "slack", "figma", "postman", "swagger"}},
			{Name: CategoryAIML, Terms: []string{"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "matplotlib", "opencv"}},
		},
		EducationHeaders:  []string{"education", "academic", "degree", "graduation"},
		ExperienceHeaders: []string{"experience", "work history", "employment", "career", "professional experience", "work experience"},
		RoleKeywords: []string{
			"engineer", "developer", "manager", "analyst", "specialist", "lead", "architect",
			"consultant", "coordinator", "director", "vp", "cto", "ceo", "officer", "executive",
			"associate", "senior", "junior", "principal", "staff", "head", "chief",
		},
		TitleEducationKeywords: []string{"bachelor", "master", "phd", "degree", "university", "college", "gpa"},
		MinTitleWords:          1,
		MaxTitleWords:          8,
		CompanyKeywords:        []string{"inc", "corp", "ltd", "company", "tech", "solutions", "systems", "group", "partners"},
		DurationEducationKeywords: []string{
			"bachelor", "master degree", "phd", "graduation", "gpa", "thesis", "dissertation", "academic",
		},
		FullTimeKeywords: []string{"full-time", "full time", "fulltime", "permanent"},
		ExclusionKeywords: []string{
			"intern", "internship", "part-time", "part time", "parttime",
			"freelance", "freelancer", "contract", "contractor", "consultant",
			"volunteer", "temporary", "temp", "seasonal", "summer",
			"co-op", "coop", "cooperative", "student", "graduate",
		},
		SummaryIndicators: []string{"summary", "objective", "profile", "about"},
	}
}

// clone deep-copies the catalog so later changes to the caller's slices are not observed.
func (c Catalog) clone() Catalog {
	out := c
	out.Skills = make([]SkillCategory, len(c.Skills))
	for i, s := range c.Skills {
		out.Skills[i] = SkillCategory{Name: s.Name, Terms: append([]string(nil), s.Terms...)}
	}
	out.EducationHeaders = append([]string(nil), c.EducationHeaders...)
	out.ExperienceHeaders = append([]string(nil), c.ExperienceHeaders...)
	out.RoleKeywords = append([]string(nil), c.RoleKeywords...)
	out.TitleEducationKeywords = append([]string(nil), c.TitleEducationKeywords...)
	out.CompanyKeywords = append([]string(nil), c.CompanyKeywords...)
	out.DurationEducationKeywords = append([]string(nil), c.DurationEducationKeywords...)
	out.FullTimeKeywords = append([]string(nil), c.FullTimeKeywords...)
	out.ExclusionKeywords = append([]string(nil), c.ExclusionKeywords...)
	out.SummaryIndicators = append([]string(nil), c.SummaryIndicators...)
	return out
}
