package documents

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/venturelens/venture-engine/pkg/models"
)

func fullBundle() *models.ProjectBundle {
	return &models.ProjectBundle{
		Project: &models.Project{
			ID:            1,
			Name:          "GreenCharge",
			Description:   "EV charging for apartment buildings.",
			Industry:      "CleanTech",
			Stage:         "mvp",
			TargetMarkets: []string{"Urban renters", "Property managers"},
			TeamSize:      "2-5",
		},
		MarketAnalysis: &models.MarketAnalysis{
			TargetCustomers:      "Apartment dwellers with EVs",
			MarketSize:           "large",
			GrowthRate:           "high",
			CompetitiveAdvantage: "Retrofit design",
			Competitors: []models.Competitor{
				{Name: "ChargeCo", Strengths: "scale", Weaknesses: "price"},
			},
		},
		ProductDetails: &models.ProductDetails{
			ProductDescription:   "Wall-mounted charger",
			UniqueValue:          "No-drilling install",
			DevelopmentStage:     "prototype",
			IntellectualProperty: "patent pending",
			Scalability:          "high",
		},
		FinancialProjections: &models.FinancialProjections{
			BusinessModel:     "subscription",
			RevenueStreams:    []string{"hardware", "subscriptions"},
			InitialInvestment: "100k-250k",
			BreakEvenPoint:    "18 months",
			OperatingCosts:    map[string]float64{"marketing": 30, "operations": 70},
			ProjectedRevenue:  []float64{10000, 50000, 150000, 400000, 900000},
		},
		EvaluationResults: &models.EvaluationResults{
			OverallScore:    72,
			Recommendations: []string{"Run a pilot", "Hire a sales lead"},
		},
	}
}

func TestRenderBusinessPlan_FullBundle(t *testing.T) {
	now := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	plan := RenderBusinessPlan(fullBundle(), now)

	assert.Contains(t, plan, "# Business Plan")
	assert.Contains(t, plan, "## GreenCharge")
	assert.Contains(t, plan, "Prepared: March 14, 2026")
	assert.Contains(t, plan, "- Business Viability Score: 72%")
	assert.Contains(t, plan, "| ChargeCo | scale | price |")
	assert.Contains(t, plan, "**Unique Value Proposition:** No-drilling install")
	assert.Contains(t, plan, "| 10000 | 50000 | 150000 | 400000 | 900000 |")
	assert.Contains(t, plan, "1. Run a pilot")
	assert.Contains(t, plan, "2. Hire a sales lead")

	// Fixed section order.
	sections := []string{
		"## Executive Summary",
		"## Market Analysis",
		"## Product/Service Details",
		"## Financial Projections",
		"## Recommendations",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(plan, section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestRenderBusinessPlan_MissingSatellites(t *testing.T) {
	bundle := &models.ProjectBundle{
		Project: &models.Project{Name: "BareIdea", Description: "Just a name so far."},
	}

	plan := RenderBusinessPlan(bundle, time.Now())

	assert.Contains(t, plan, "Market analysis data not provided.")
	assert.Contains(t, plan, "Product details not provided.")
	assert.Contains(t, plan, "Financial projections not provided.")
	assert.NotContains(t, plan, "## Recommendations")
	assert.NotContains(t, plan, "Business Viability Score")
}

func TestRenderBusinessPlan_Deterministic(t *testing.T) {
	now := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, RenderBusinessPlan(fullBundle(), now), RenderBusinessPlan(fullBundle(), now))
}
