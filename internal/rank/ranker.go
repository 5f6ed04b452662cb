package rank

import (
	"fmt"
	"sort"
	"strings"

	"careerguide-engine/internal/config"
	"careerguide-engine/internal/domain"
)

const FallbackSummary = "We stored your preferences. Add more specific strengths or interests to unlock tailored paths."

// Submission is the raw self-report; raw values are kept for the summary.
type Submission struct {
	Interests  []string
	Strengths  []string
	FocusAreas []string
}

type ScoredCareer struct {
	Career domain.CareerPath `json:"career"`
	Fit    Fit               `json:"fit"`
}

type Result struct {
	Top            []ScoredCareer        `json:"top"`
	Recommendation domain.Recommendation `json:"recommendation"`
}

type Ranker struct {
	Scorer Scorer
	Cfg    config.Scoring
}

func NewRanker(cfg config.Scoring) Ranker {
	return Ranker{Scorer: FitScorer{Cfg: cfg}, Cfg: cfg}
}

// Rank scores the whole catalog against sub. Equal scores keep catalog order.
func (r Ranker) Rank(sub Submission, catalog []domain.CareerPath) Result {
	attrs := NewAttributes(sub.Strengths, sub.FocusAreas, sub.Interests)

	scored := make([]ScoredCareer, 0, len(catalog))
	for _, c := range catalog {
		scored = append(scored, ScoredCareer{Career: c, Fit: r.Scorer.Score(attrs, c)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Fit.Score > scored[j].Fit.Score
	})

	topN := r.Cfg.TopN
	if topN <= 0 || topN > config.MaxRecommendations {
		topN = config.MaxRecommendations
	}
	if len(scored) > topN {
		scored = scored[:topN]
	}

	total := 0
	titles := make([]string, 0, len(scored))
	for _, sc := range scored {
		total += sc.Fit.Score
		if sc.Fit.Score > 0 {
			titles = append(titles, sc.Career.Title)
		}
	}

	return Result{
		Top: scored,
		Recommendation: domain.Recommendation{
			RecommendedCareers: titles,
			ConfidenceScore:    r.confidence(total, len(titles)),
			Summary:            Summarize(sub, titles),
		},
	}
}

func (r Ranker) confidence(total, recommended int) int {
	if recommended == 0 {
		return r.Cfg.ConfidenceEmpty
	}
	return clamp(total*r.Cfg.ConfidenceMultiplier, r.Cfg.ConfidenceFloor, r.Cfg.ConfidenceCeiling)
}

// Summarize builds the narrative from the raw, as-typed input.
func Summarize(sub Submission, titles []string) string {
	if len(titles) == 0 {
		return FallbackSummary
	}
	return fmt.Sprintf("Based on your strengths in %s and interests in %s, we recommend exploring %s.",
		strings.Join(sub.Strengths, ", "),
		strings.Join(sub.Interests, ", "),
		strings.Join(titles, ", "),
	)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
