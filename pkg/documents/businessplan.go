// Package documents renders project bundles into shareable documents.
package documents

import (
	"fmt"
	"strings"
	"time"

	"github.com/venturelens/venture-engine/pkg/models"
)

// RenderBusinessPlan produces a Markdown business plan from a project
// bundle. Sections for absent satellites render a "not provided"
// placeholder, so a partially completed questionnaire still yields a
// complete document skeleton.
func RenderBusinessPlan(bundle *models.ProjectBundle, now time.Time) string {
	var b strings.Builder

	project := bundle.Project

	fmt.Fprintf(&b, "# Business Plan\n\n## %s\n\nPrepared: %s\n\n", project.Name, now.Format("January 2, 2006"))

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "**Business Overview:** %s\n\n", project.Description)
	fmt.Fprintf(&b, "- Industry: %s\n", project.Industry)
	fmt.Fprintf(&b, "- Current Stage: %s\n", project.Stage)
	fmt.Fprintf(&b, "- Target Markets: %s\n", strings.Join(project.TargetMarkets, ", "))
	fmt.Fprintf(&b, "- Team Size: %s\n", project.TeamSize)
	if bundle.EvaluationResults != nil {
		fmt.Fprintf(&b, "- Business Viability Score: %d%%\n", bundle.EvaluationResults.OverallScore)
	}
	b.WriteString("\n")

	b.WriteString("## Market Analysis\n\n")
	if ma := bundle.MarketAnalysis; ma != nil {
		fmt.Fprintf(&b, "**Target Customers:** %s\n\n", ma.TargetCustomers)
		fmt.Fprintf(&b, "**Market Size:** %s\n\n", ma.MarketSize)
		fmt.Fprintf(&b, "**Market Growth Rate:** %s\n\n", ma.GrowthRate)
		fmt.Fprintf(&b, "**Competitive Advantage:** %s\n\n", ma.CompetitiveAdvantage)

		if len(ma.Competitors) > 0 {
			b.WriteString("### Competitive Analysis\n\n")
			b.WriteString("| Competitor | Strengths | Weaknesses |\n")
			b.WriteString("| --- | --- | --- |\n")
			for _, c := range ma.Competitors {
				fmt.Fprintf(&b, "| %s | %s | %s |\n", c.Name, c.Strengths, c.Weaknesses)
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString("Market analysis data not provided.\n\n")
	}

	b.WriteString("## Product/Service Details\n\n")
	if pd := bundle.ProductDetails; pd != nil {
		fmt.Fprintf(&b, "**Product Description:** %s\n\n", pd.ProductDescription)
		fmt.Fprintf(&b, "**Unique Value Proposition:** %s\n\n", pd.UniqueValue)
		fmt.Fprintf(&b, "**Development Stage:** %s\n\n", pd.DevelopmentStage)
		fmt.Fprintf(&b, "**Intellectual Property:** %s\n\n", pd.IntellectualProperty)
		fmt.Fprintf(&b, "**Scalability:** %s\n\n", pd.Scalability)
	} else {
		b.WriteString("Product details not provided.\n\n")
	}

	b.WriteString("## Financial Projections\n\n")
	if fp := bundle.FinancialProjections; fp != nil {
		fmt.Fprintf(&b, "**Business Model:** %s\n\n", fp.BusinessModel)
		fmt.Fprintf(&b, "**Revenue Streams:** %s\n\n", strings.Join(fp.RevenueStreams, ", "))
		fmt.Fprintf(&b, "**Initial Investment Required:** %s\n\n", fp.InitialInvestment)
		fmt.Fprintf(&b, "**Break-even Point:** %s\n\n", fp.BreakEvenPoint)

		if len(fp.ProjectedRevenue) > 0 {
			b.WriteString("### 5-Year Revenue Projections\n\n")
			b.WriteString("| Year 1 | Year 2 | Year 3 | Year 4 | Year 5 |\n")
			b.WriteString("| --- | --- | --- | --- | --- |\n|")
			for i := 0; i < models.ProjectedRevenueYears; i++ {
				var amount float64
				if i < len(fp.ProjectedRevenue) {
					amount = fp.ProjectedRevenue[i]
				}
				fmt.Fprintf(&b, " %.0f |", amount)
			}
			b.WriteString("\n\n")
		}
	} else {
		b.WriteString("Financial projections not provided.\n\n")
	}

	if er := bundle.EvaluationResults; er != nil && len(er.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for i, rec := range er.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
		b.WriteString("\n")
	}

	return b.String()
}
