package domain

type Profile struct {
	ID              string   `json:"id"`
	UserID          string   `json:"userId"`
	Headline        string   `json:"headline,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	CurrentRole     string   `json:"currentRole,omitempty"`
	TargetRole      string   `json:"targetRole,omitempty"`
	ExperienceYears *int     `json:"experienceYears,omitempty"`
}

type OnboardingStatus struct {
	IsOnboarded     bool `json:"isOnboarded"`
	IsAuthenticated bool `json:"isAuthenticated"`
}
