package models

import "time"

// Project is the top-level business idea being evaluated.
// Each project owns at most one of each satellite record
// (MarketAnalysis, ProductDetails, FinancialProjections, EvaluationResults).
type Project struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Industry      string    `json:"industry"`
	Stage         string    `json:"stage"`
	TargetMarkets []string  `json:"targetMarkets"`
	TeamSize      string    `json:"teamSize"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProjectUpdate carries a partial update for PATCH requests.
// Nil fields are left unchanged.
type ProjectUpdate struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Industry      *string   `json:"industry"`
	Stage         *string   `json:"stage"`
	TargetMarkets *[]string `json:"targetMarkets"`
	TeamSize      *string   `json:"teamSize"`
}

// Apply overlays the non-nil fields of the update onto the project.
func (u *ProjectUpdate) Apply(p *Project) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Industry != nil {
		p.Industry = *u.Industry
	}
	if u.Stage != nil {
		p.Stage = *u.Stage
	}
	if u.TargetMarkets != nil {
		p.TargetMarkets = *u.TargetMarkets
	}
	if u.TeamSize != nil {
		p.TeamSize = *u.TeamSize
	}
}
