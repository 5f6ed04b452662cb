package rank

import (
	"reflect"
	"strings"
	"testing"

	"careerguide-engine/internal/domain"
)

func TestComputeSkillCoverage(t *testing.T) {
	t.Parallel()

	career := &domain.CareerPath{
		Category:       "Data",
		RequiredSkills: []string{"Python", "SQL", "Statistics"},
		SkillsToGrow:   []string{"MLOps", "Experiment design"},
	}
	profile := &domain.Profile{
		Skills:    []string{"python", "SQL", "mlops"},
		Interests: []string{"Big Data"},
	}

	cases := []struct {
		name    string
		profile *domain.Profile
		career  *domain.CareerPath
		latest  *domain.Assessment
		want    SkillCoverage
	}{
		{name: "no career", profile: profile, want: SkillCoverage{45, 38, 50}},
		{name: "no profile", career: career, want: SkillCoverage{0, 0, 50}},
		{name: "profile only", profile: profile, career: career, want: SkillCoverage{67, 50, 80}},
		{
			name:    "with assessment",
			profile: profile,
			career:  career,
			latest:  &domain.Assessment{Interests: []string{"data"}},
			want:    SkillCoverage{67, 50, 100},
		},
		{name: "career without skills", profile: profile, career: &domain.CareerPath{Category: "Design"}, want: SkillCoverage{45, 38, 50}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeSkillCoverage(tc.profile, tc.career, tc.latest)
			if got != tc.want {
				t.Fatalf("coverage: got=%+v want=%+v", got, tc.want)
			}
		})
	}
}

func TestEvaluateResume(t *testing.T) {
	t.Parallel()

	career := &domain.CareerPath{
		Title:          "Data Scientist",
		RequiredSkills: []string{"Python", "SQL"},
		SkillsToGrow:   []string{"MLOps"},
	}
	resume := "Built Python pipelines and tuned SQL queries for analytics teams"

	rep := EvaluateResume(resume, career)
	if !reflect.DeepEqual(rep.KeywordMatches, []string{"Python", "SQL"}) {
		t.Fatalf("matches: got=%v", rep.KeywordMatches)
	}
	if !reflect.DeepEqual(rep.MissingKeywords, []string{"MLOps"}) {
		t.Fatalf("missing: got=%v", rep.MissingKeywords)
	}
	// 40 + round(10/5)=2 + 2*8 = 58
	if rep.Score != 58 {
		t.Fatalf("score: got=%d want=58", rep.Score)
	}
	if !strings.HasPrefix(rep.Recommendations[0], "Mention: MLOps to match Data Scientist role.") {
		t.Fatalf("first recommendation: got=%q", rep.Recommendations[0])
	}

	// double spaces cost 8 points; generic keywords without a career
	rep = EvaluateResume("short  note", nil)
	if rep.Score != 35 {
		t.Fatalf("floor: got=%d want=35", rep.Score)
	}
	if len(rep.MissingKeywords) != 3 || len(rep.Recommendations) != 4 {
		t.Fatalf("generic report: %+v", rep)
	}
	if !strings.Contains(rep.Recommendations[0], "target role") {
		t.Fatalf("generic mention: got=%q", rep.Recommendations[0])
	}
}
