package models

// ProductDetails captures step 3 of the questionnaire.
// Stored 1:1 with a project.
type ProductDetails struct {
	ID                   int64  `json:"id"`
	ProjectID            int64  `json:"projectId"`
	ProductDescription   string `json:"productDescription"`
	UniqueValue          string `json:"uniqueValue"`
	DevelopmentStage     string `json:"developmentStage"`
	IntellectualProperty string `json:"intellectualProperty"`
	Scalability          string `json:"scalability"`
}
