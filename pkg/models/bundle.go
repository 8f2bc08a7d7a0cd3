package models

// ProjectBundle is a project together with whichever satellite records
// exist. Missing satellites are nil and render as "not provided"
// placeholders in generated documents.
type ProjectBundle struct {
	Project              *Project              `json:"project"`
	MarketAnalysis       *MarketAnalysis       `json:"marketAnalysis"`
	ProductDetails       *ProductDetails       `json:"productDetails"`
	FinancialProjections *FinancialProjections `json:"financialProjections"`
	EvaluationResults    *EvaluationResults    `json:"evaluationResults,omitempty"`
}
