package models

// ProjectedRevenueYears is the number of yearly revenue figures a
// projection must carry.
const ProjectedRevenueYears = 5

// FinancialProjections captures step 4 of the questionnaire.
// Stored 1:1 with a project.
//
// OperatingCosts maps a cost category to its share of total costs in
// percent. The UI nudges the shares toward summing to 100 but the server
// does not enforce it. ProjectedRevenue holds exactly five yearly amounts.
type FinancialProjections struct {
	ID                int64              `json:"id"`
	ProjectID         int64              `json:"projectId"`
	BusinessModel     string             `json:"businessModel"`
	RevenueStreams    []string           `json:"revenueStreams"`
	InitialInvestment string             `json:"initialInvestment"`
	OperatingCosts    map[string]float64 `json:"operatingCosts"`
	BreakEvenPoint    string             `json:"breakEvenPoint"`
	ProjectedRevenue  []float64          `json:"projectedRevenue"`
}
