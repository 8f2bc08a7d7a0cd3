package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/apperrors"
	"github.com/venturelens/venture-engine/pkg/config"
	"github.com/venturelens/venture-engine/pkg/llm"
	"github.com/venturelens/venture-engine/pkg/metrics"
	"github.com/venturelens/venture-engine/pkg/models"
	"github.com/venturelens/venture-engine/pkg/retry"
)

const analysisSystemPrompt = `You are an expert business consultant and venture capitalist with 20+ years of experience in startup evaluation and business plan development.

Analyze the provided business information and provide a comprehensive evaluation. Your analysis should be:
- Objective and data-driven
- Actionable and specific
- Realistic about market conditions
- Focused on growth potential and scalability

Respond with valid JSON in this exact format:
{
  "overallScore": number (1-100),
  "marketScore": number (1-100),
  "productScore": number (1-100),
  "financialScore": number (1-100),
  "strengths": [array of 3-5 specific strengths],
  "weaknesses": [array of 3-5 specific weaknesses],
  "recommendations": [array of 5-7 actionable recommendations],
  "nextSteps": [array of 3-5 immediate next steps],
  "riskFactors": [array of 3-5 key risks to monitor],
  "opportunities": [array of 3-5 market opportunities to pursue]
}`

const enhanceSystemPrompt = "You are an expert business plan writer and strategic consultant. Provide detailed, professional business plan enhancements."

// RecommendationService asks the AI collaborator for structured business
// advice based on a project bundle.
type RecommendationService interface {
	// Generate returns structured recommendations for a project. Returns
	// ErrNotFound when the project does not exist and ErrUpstream when the
	// AI collaborator fails.
	Generate(ctx context.Context, projectID int64) (*models.BusinessRecommendations, error)

	// EnhancePlan returns a prose enhancement of the project's business
	// plan.
	EnhancePlan(ctx context.Context, projectID int64) (string, error)
}

type recommendationService struct {
	bundles  BundleService
	client   llm.Client
	timeout  time.Duration
	retryCfg *retry.Config
	logger   *zap.Logger
}

// NewRecommendationService creates a recommendation service over the given
// bundle source and LLM client.
func NewRecommendationService(bundles BundleService, client llm.Client, cfg *config.AIConfig, logger *zap.Logger) RecommendationService {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.MaxRetries

	return &recommendationService{
		bundles:  bundles,
		client:   client,
		timeout:  cfg.Timeout(),
		retryCfg: retryCfg,
		logger:   logger,
	}
}

func (s *recommendationService) Generate(ctx context.Context, projectID int64) (*models.BusinessRecommendations, error) {
	bundle, err := s.bundles.Get(ctx, projectID, false)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	response, err := retry.DoWithResult(ctx, s.retryCfg, func() (string, error) {
		return s.client.Complete(ctx, llm.CompletionRequest{
			System:      analysisSystemPrompt,
			Prompt:      buildAnalysisPrompt(bundle),
			Temperature: 0.3,
			MaxTokens:   2000,
			JSONMode:    true,
		})
	})
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("recommendations", "error").Inc()
		s.logger.Error("recommendation generation failed",
			zap.Int64("project_id", projectID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	recommendations, err := llm.ParseJSONResponse[models.BusinessRecommendations](response)
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("recommendations", "error").Inc()
		s.logger.Error("recommendation reply was not valid JSON",
			zap.Int64("project_id", projectID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	metrics.AIRequestsTotal.WithLabelValues("recommendations", "success").Inc()
	normalizeRecommendations(&recommendations)

	s.logger.Info("recommendations generated",
		zap.Int64("project_id", projectID),
		zap.Int("overall_score", recommendations.OverallScore))

	return &recommendations, nil
}

func (s *recommendationService) EnhancePlan(ctx context.Context, projectID int64) (string, error) {
	bundle, err := s.bundles.Get(ctx, projectID, false)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Please enhance and improve the following business plan with specific, actionable insights:

%s

Provide an enhanced business plan section that includes:
1. Refined value proposition
2. Improved market positioning strategy
3. Enhanced competitive analysis
4. Optimized go-to-market strategy
5. Risk mitigation strategies
6. Growth and scaling recommendations

Format the response as a professional business plan section with clear headings and bullet points.`, buildAnalysisPrompt(bundle))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	response, err := retry.DoWithResult(ctx, s.retryCfg, func() (string, error) {
		return s.client.Complete(ctx, llm.CompletionRequest{
			System:      enhanceSystemPrompt,
			Prompt:      prompt,
			Temperature: 0.4,
			MaxTokens:   3000,
		})
	})
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("enhance_plan", "error").Inc()
		s.logger.Error("plan enhancement failed",
			zap.Int64("project_id", projectID),
			zap.Error(err))
		return "", fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	metrics.AIRequestsTotal.WithLabelValues("enhance_plan", "success").Inc()
	return response, nil
}

// normalizeRecommendations clamps scores to [1,100], substituting 50 for
// anything the model omitted, and replaces nil lists with empty ones.
func normalizeRecommendations(r *models.BusinessRecommendations) {
	r.OverallScore = clampScore(r.OverallScore)
	r.MarketScore = clampScore(r.MarketScore)
	r.ProductScore = clampScore(r.ProductScore)
	r.FinancialScore = clampScore(r.FinancialScore)

	for _, list := range []*[]string{
		&r.Strengths, &r.Weaknesses, &r.Recommendations,
		&r.NextSteps, &r.RiskFactors, &r.Opportunities,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
}

func clampScore(score int) int {
	if score == 0 {
		return 50
	}
	if score < 1 {
		return 1
	}
	if score > 100 {
		return 100
	}
	return score
}

// buildAnalysisPrompt flattens a project bundle into the prompt the AI
// collaborator analyzes. Sections for absent satellites are omitted.
func buildAnalysisPrompt(bundle *models.ProjectBundle) string {
	var b strings.Builder

	project := bundle.Project
	targetMarkets := "Not specified"
	if len(project.TargetMarkets) > 0 {
		targetMarkets = strings.Join(project.TargetMarkets, ", ")
	}

	fmt.Fprintf(&b, `Business Analysis Request:

COMPANY OVERVIEW:
- Business Name: %s
- Description: %s
- Industry: %s
- Development Stage: %s
- Target Markets: %s
- Team Size: %s
`, project.Name, project.Description, project.Industry, project.Stage, targetMarkets, project.TeamSize)

	if ma := bundle.MarketAnalysis; ma != nil {
		competitors, _ := json.Marshal(ma.Competitors)
		fmt.Fprintf(&b, `
MARKET ANALYSIS:
- Target Customers: %s
- Market Size: %s
- Growth Rate: %s
- Competitive Advantage: %s
- Competitors: %s
`, ma.TargetCustomers, ma.MarketSize, ma.GrowthRate, ma.CompetitiveAdvantage, competitors)
	}

	if pd := bundle.ProductDetails; pd != nil {
		fmt.Fprintf(&b, `
PRODUCT DETAILS:
- Product Description: %s
- Unique Value Proposition: %s
- Development Stage: %s
- Intellectual Property: %s
- Scalability: %s
`, pd.ProductDescription, pd.UniqueValue, pd.DevelopmentStage, pd.IntellectualProperty, pd.Scalability)
	}

	if fp := bundle.FinancialProjections; fp != nil {
		costs, _ := json.Marshal(fp.OperatingCosts)
		revenue, _ := json.Marshal(fp.ProjectedRevenue)
		fmt.Fprintf(&b, `
FINANCIAL PROJECTIONS:
- Business Model: %s
- Revenue Streams: %s
- Initial Investment Required: %s
- Break-even Point: %s
- Operating Costs: %s
- Revenue Projections: %s
`, fp.BusinessModel, strings.Join(fp.RevenueStreams, ", "), fp.InitialInvestment, fp.BreakEvenPoint, costs, revenue)
	}

	b.WriteString(`
Please provide a comprehensive business analysis and recommendations based on this information. Consider current market trends, industry standards, and best practices for startups in this space.`)

	return b.String()
}

var _ RecommendationService = (*recommendationService)(nil)
