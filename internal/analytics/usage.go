package analytics

type FeatureUsage struct {
	Feature string `json:"feature"`
	Usage   int    `json:"usage"`
}

// FeatureUsageBars are illustrative dashboard bars. The formulas are
// placeholders kept stable for the UI; they carry no statistical meaning.
func FeatureUsageBars(careers, sessions, assessments int) []FeatureUsage {
	return []FeatureUsage{
		{Feature: "Career Explorer", Usage: careers*3 + 42},
		{Feature: "Mentor Connect", Usage: sessions*5 + 28},
		{Feature: "Innovation Hub", Usage: 64},
		{Feature: "Learning Paths", Usage: assessments*4 + 30},
		{Feature: "Feedback Panel", Usage: 37},
	}
}
