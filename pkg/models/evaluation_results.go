package models

// EvaluationResults holds the viability scores computed at the end of the
// wizard, plus the derived categorical text. Stored 1:1 with a project.
// All scores are integers on a 0-100 scale.
type EvaluationResults struct {
	ID              int64    `json:"id"`
	ProjectID       int64    `json:"projectId"`
	MarketScore     int      `json:"marketScore"`
	ProductScore    int      `json:"productScore"`
	FinancialScore  int      `json:"financialScore"`
	OverallScore    int      `json:"overallScore"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}
