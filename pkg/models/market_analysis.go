package models

// Competitor is one row of a project's competitive analysis.
type Competitor struct {
	Name       string `json:"name"`
	Strengths  string `json:"strengths"`
	Weaknesses string `json:"weaknesses"`
}

// MarketAnalysis captures step 2 of the questionnaire.
// Stored 1:1 with a project.
type MarketAnalysis struct {
	ID                   int64        `json:"id"`
	ProjectID            int64        `json:"projectId"`
	TargetCustomers      string       `json:"targetCustomers"`
	MarketSize           string       `json:"marketSize"`
	GrowthRate           string       `json:"growthRate"`
	Competitors          []Competitor `json:"competitors"`
	CompetitiveAdvantage string       `json:"competitiveAdvantage"`
}
