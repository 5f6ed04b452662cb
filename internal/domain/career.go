package domain

type CareerPath struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"requiredSkills"`
	SkillsToGrow    []string `json:"skillsToGrow"`
	Category        string   `json:"category"`
	GrowthOutlook   string   `json:"growthOutlook"` // High/Stable/...
	Difficulty      string   `json:"difficulty"`    // Entry/Entry-Mid/Mid-Senior
	EstimatedSalary string   `json:"estimatedSalary"`
}

type SavedCareer struct {
	SavedCareerID string     `json:"savedCareerId"`
	Career        CareerPath `json:"career"`
}
