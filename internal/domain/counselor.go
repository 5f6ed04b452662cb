package domain

type Counselor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	Bio             string   `json:"bio"`
	ExperienceYears int      `json:"experienceYears"`
	Rating          float64  `json:"rating"` // 0..5
	FocusAreas      []string `json:"focusAreas"`
	Availability    []string `json:"availability"`
}
