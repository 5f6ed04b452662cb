// config/overlay.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"careerguide-engine/internal/domain"
)

type CareerSeed struct {
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	RequiredSkills  []string `yaml:"required_skills"`
	SkillsToGrow    []string `yaml:"skills_to_grow"`
	Category        string   `yaml:"category"`
	GrowthOutlook   string   `yaml:"growth_outlook"`
	Difficulty      string   `yaml:"difficulty"`
	EstimatedSalary string   `yaml:"estimated_salary"`
}

type CounselorSeed struct {
	Name            string   `yaml:"name"`
	Specialization  string   `yaml:"specialization"`
	Bio             string   `yaml:"bio"`
	ExperienceYears int      `yaml:"experience_years"`
	Rating          float64  `yaml:"rating"`
	FocusAreas      []string `yaml:"focus_areas"`
	Availability    []string `yaml:"availability"`
}

type CatalogFile struct {
	CareerPaths []CareerSeed    `yaml:"career_paths"`
	Counselors  []CounselorSeed `yaml:"counselors"`
}

// OverlayCatalog replaces the sections of cat that catalogPath defines.
func OverlayCatalog(cat *CatalogFile, catalogPath string) error {
	b, err := os.ReadFile(catalogPath)
	if err != nil {
		// Missing catalog file keeps the built-in seed
		return nil
	}

	var cf CatalogFile
	if err := yaml.Unmarshal(b, &cf); err != nil {
		return err
	}

	if len(cf.CareerPaths) > 0 {
		cat.CareerPaths = cf.CareerPaths
	}
	if len(cf.Counselors) > 0 {
		cat.Counselors = cf.Counselors
	}
	return nil
}

func (c CareerSeed) Domain() domain.CareerPath {
	return domain.CareerPath{
		Title:           c.Title,
		Description:     c.Description,
		RequiredSkills:  c.RequiredSkills,
		SkillsToGrow:    c.SkillsToGrow,
		Category:        c.Category,
		GrowthOutlook:   c.GrowthOutlook,
		Difficulty:      c.Difficulty,
		EstimatedSalary: c.EstimatedSalary,
	}
}

func (c CounselorSeed) Domain() domain.Counselor {
	return domain.Counselor{
		Name:            c.Name,
		Specialization:  c.Specialization,
		Bio:             c.Bio,
		ExperienceYears: c.ExperienceYears,
		Rating:          c.Rating,
		FocusAreas:      c.FocusAreas,
		Availability:    c.Availability,
	}
}
