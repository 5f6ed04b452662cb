package config

// DefaultCatalog is the seed used when no catalog file is present.
func DefaultCatalog() CatalogFile {
	return CatalogFile{
		CareerPaths: []CareerSeed{
			{
				Title:           "Frontend Developer",
				Description:     "Build responsive user interfaces with performance-first thinking.",
				RequiredSkills:  []string{"React", "TypeScript", "CSS", "Testing"},
				SkillsToGrow:    []string{"UX storytelling", "Accessibility", "Design systems"},
				Category:        "Technology",
				GrowthOutlook:   "High",
				Difficulty:      "Entry-Mid",
				EstimatedSalary: "$80k - $140k",
			},
			{
				Title:           "Product Manager",
				Description:     "Coordinate product vision, customer insights, and delivery teams.",
				RequiredSkills:  []string{"Strategy", "Communication", "Analytics", "Agile"},
				SkillsToGrow:    []string{"Experimentation", "Executive storytelling", "Roadmapping"},
				Category:        "Product",
				GrowthOutlook:   "Stable",
				Difficulty:      "Mid-Senior",
				EstimatedSalary: "$100k - $160k",
			},
			{
				Title:           "Data Scientist",
				Description:     "Translate complex datasets into business insights and ML models.",
				RequiredSkills:  []string{"Python", "SQL", "Statistics", "Machine Learning"},
				SkillsToGrow:    []string{"MLOps", "Prompt engineering", "Experiment design"},
				Category:        "Data",
				GrowthOutlook:   "High",
				Difficulty:      "Mid-Senior",
				EstimatedSalary: "$110k - $180k",
			},
			{
				Title:           "UX Designer",
				Description:     "Design human-centered experiences backed by research.",
				RequiredSkills:  []string{"Figma", "User Research", "Prototyping", "Information Architecture"},
				SkillsToGrow:    []string{"Design systems", "Motion design", "Workshop facilitation"},
				Category:        "Design",
				GrowthOutlook:   "High",
				Difficulty:      "Entry-Mid",
				EstimatedSalary: "$75k - $130k",
			},
		},
		Counselors: []CounselorSeed{
			{
				Name:            "Ananya Rao",
				Specialization:  "Product Strategy",
				Bio:             "Former FAANG PM mentoring students on product sense and leadership.",
				ExperienceYears: 8,
				Rating:          4.9,
				FocusAreas:      []string{"Product", "Leadership", "Interviews"},
				Availability:    []string{"Tue 6 PM", "Thu 8 PM", "Sat 10 AM"},
			},
			{
				Name:            "Leon Chen",
				Specialization:  "Data Science",
				Bio:             "ML lead helping grads transition into high-impact applied science roles.",
				ExperienceYears: 10,
				Rating:          4.8,
				FocusAreas:      []string{"Data", "AI", "Research"},
				Availability:    []string{"Mon 7 PM", "Wed 9 PM", "Sun 11 AM"},
			},
			{
				Name:            "Sara Velasquez",
				Specialization:  "Design & Research",
				Bio:             "UX director focused on storytelling portfolios and systems thinking.",
				ExperienceYears: 11,
				Rating:          5,
				FocusAreas:      []string{"Design", "Storytelling", "Interviews"},
				Availability:    []string{"Fri 5 PM", "Sat 1 PM", "Sun 9 AM"},
			},
		},
	}
}
