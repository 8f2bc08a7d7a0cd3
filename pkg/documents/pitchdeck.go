package documents

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/venturelens/venture-engine/pkg/models"
)

// pitchDeckTemplate renders the nine-slide deck. Fields are pre-resolved
// into strings so the template stays free of fallback logic.
var pitchDeckTemplate = template.Must(template.New("pitchdeck").Parse(`<div class="pitch-deck">
  <section class="slide cover-slide">
    <div class="slide-content">
      <h1>{{.Name}}</h1>
      <p class="tagline">{{.Tagline}}</p>
    </div>
  </section>

  <section class="slide problem-slide">
    <div class="slide-content">
      <h2>The Problem</h2>
      <div class="problem-description">{{.Problem}}</div>
    </div>
  </section>

  <section class="slide solution-slide">
    <div class="slide-content">
      <h2>Our Solution</h2>
      <div class="solution-description">{{.Solution}}</div>
    </div>
  </section>

  <section class="slide market-slide">
    <div class="slide-content">
      <h2>Market Opportunity</h2>
      <div class="market-details">
        <p><strong>Target Market:</strong> {{.TargetMarket}}</p>
        <p><strong>Market Size:</strong> {{.MarketSize}}</p>
        <p><strong>Growth Rate:</strong> {{.GrowthRate}}</p>
      </div>
    </div>
  </section>

  <section class="slide business-model-slide">
    <div class="slide-content">
      <h2>Business Model</h2>
      <div class="business-model-details">
        <p><strong>Model:</strong> {{.BusinessModel}}</p>
        <p><strong>Revenue Streams:</strong> {{.RevenueStreams}}</p>
      </div>
    </div>
  </section>

  <section class="slide competitive-slide">
    <div class="slide-content">
      <h2>Competitive Advantage</h2>
      <div class="competitive-details">
        <p>{{.CompetitiveAdvantage}}</p>
      </div>
    </div>
  </section>

  <section class="slide financials-slide">
    <div class="slide-content">
      <h2>Financial Projections</h2>
      <div class="financial-highlights">
        <p><strong>Initial Investment:</strong> {{.InitialInvestment}}</p>
        <p><strong>Break-even:</strong> {{.BreakEven}}</p>
      </div>
    </div>
  </section>

  <section class="slide team-slide">
    <div class="slide-content">
      <h2>Our Team</h2>
      <div class="team-details">
        <p><strong>Team Size:</strong> {{.TeamSize}}</p>
        <p>Our talented team brings together expertise in {{.Industry}} and a passion for innovation.</p>
      </div>
    </div>
  </section>

  <section class="slide ask-slide">
    <div class="slide-content">
      <h2>Investment Opportunity</h2>
      <div class="ask-details">
        <p><strong>Seeking:</strong> {{.Ask}}</p>
        <p><strong>Use of Funds:</strong> Product development, market expansion, and operational growth</p>
      </div>
    </div>
  </section>

  <section class="slide contact-slide">
    <div class="slide-content">
      <h2>Thank You</h2>
      <p class="contact-info">Contact us to learn more about this opportunity</p>
    </div>
  </section>
</div>
`))

type pitchDeckData struct {
	Name                 string
	Tagline              string
	Problem              string
	Solution             string
	TargetMarket         string
	MarketSize           string
	GrowthRate           string
	BusinessModel        string
	RevenueStreams       string
	CompetitiveAdvantage string
	InitialInvestment    string
	BreakEven            string
	TeamSize             string
	Industry             string
	Ask                  string
}

// RenderPitchDeck produces the HTML slide deck for a project bundle.
// Absent satellite fields fall back to "Not specified" style placeholders.
func RenderPitchDeck(bundle *models.ProjectBundle) (string, error) {
	project := bundle.Project

	data := pitchDeckData{
		Name:                 project.Name,
		Tagline:              "Innovative Solution",
		Problem:              firstSentence(project.Description),
		Solution:             project.Description,
		TargetMarket:         "Not specified",
		MarketSize:           "Not specified",
		GrowthRate:           "Not specified",
		BusinessModel:        "Not specified",
		RevenueStreams:       "Not specified",
		CompetitiveAdvantage: "Our unique approach provides significant advantages over competitors.",
		InitialInvestment:    "Not specified",
		BreakEven:            "Not specified",
		TeamSize:             project.TeamSize,
		Industry:             project.Industry,
		Ask:                  "Investment amount not specified",
	}

	if ma := bundle.MarketAnalysis; ma != nil {
		if ma.TargetCustomers != "" {
			data.TargetMarket = ma.TargetCustomers
		}
		if ma.MarketSize != "" {
			data.MarketSize = ma.MarketSize
		}
		if ma.GrowthRate != "" {
			data.GrowthRate = ma.GrowthRate
		}
		if ma.CompetitiveAdvantage != "" {
			data.CompetitiveAdvantage = ma.CompetitiveAdvantage
		}
	}

	if pd := bundle.ProductDetails; pd != nil {
		if pd.UniqueValue != "" {
			data.Tagline = pd.UniqueValue
		}
		if pd.ProductDescription != "" {
			data.Solution = pd.ProductDescription
		}
	}

	if fp := bundle.FinancialProjections; fp != nil {
		if fp.BusinessModel != "" {
			data.BusinessModel = fp.BusinessModel
		}
		if len(fp.RevenueStreams) > 0 {
			data.RevenueStreams = strings.Join(fp.RevenueStreams, ", ")
		}
		if fp.InitialInvestment != "" {
			data.InitialInvestment = fp.InitialInvestment
			data.Ask = fp.InitialInvestment
		}
		if fp.BreakEvenPoint != "" {
			data.BreakEven = fp.BreakEvenPoint
		}
	}

	var b strings.Builder
	if err := pitchDeckTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render pitch deck: %w", err)
	}

	return b.String(), nil
}

// firstSentence truncates text at the first period, matching how the deck
// frames the problem statement.
func firstSentence(text string) string {
	if i := strings.IndexByte(text, '.'); i >= 0 {
		return text[:i+1]
	}
	return text
}
