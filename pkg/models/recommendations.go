package models

// BusinessRecommendations is the structured reply of the AI collaborator.
// Scores are clamped to [1,100] and list fields default to empty when the
// model omits them.
type BusinessRecommendations struct {
	OverallScore    int      `json:"overallScore"`
	MarketScore     int      `json:"marketScore"`
	ProductScore    int      `json:"productScore"`
	FinancialScore  int      `json:"financialScore"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	NextSteps       []string `json:"nextSteps"`
	RiskFactors     []string `json:"riskFactors"`
	Opportunities   []string `json:"opportunities"`
}
