// Package scoring converts the wizard's five self-assessment answers into
// viability scores.
package scoring

import (
	"fmt"
	"math"
)

// QuestionID identifies one of the five self-assessment questions.
type QuestionID string

const (
	MarketPotential        QuestionID = "market_potential"
	CompetitionIntensity   QuestionID = "competition_intensity"
	ProductDifferentiation QuestionID = "product_differentiation"
	ScalabilityPotential   QuestionID = "scalability_potential"
	TeamExperience         QuestionID = "team_experience"
)

// QuestionIDs lists the required question ids in presentation order.
var QuestionIDs = []QuestionID{
	MarketPotential,
	CompetitionIntensity,
	ProductDifferentiation,
	ScalabilityPotential,
	TeamExperience,
}

// Answer bounds. Answers are ordinal Likert values.
const (
	MinAnswer = 1
	MaxAnswer = 5
)

// strongThreshold is the sub-score at or above which a dimension counts as
// a strength rather than a weakness.
const strongThreshold = 70

// Answers maps question ids to their 1-5 answers.
type Answers map[QuestionID]int

// Result holds the computed sub-scores, the aggregate score, and the
// threshold-derived text. All scores are integers on a 0-100 scale.
type Result struct {
	MarketScore     int
	ProductScore    int
	FinancialScore  int
	OverallScore    int
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
}

// MissingAnswerError reports an absent question id.
type MissingAnswerError struct {
	Question QuestionID
}

func (e *MissingAnswerError) Error() string {
	return fmt.Sprintf("missing answer for question %q", e.Question)
}

// OutOfRangeError reports an answer outside [1,5].
type OutOfRangeError struct {
	Question QuestionID
	Value    int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("answer %d for question %q is outside the range %d-%d",
		e.Value, e.Question, MinAnswer, MaxAnswer)
}

// Fixed text appended based on threshold comparisons.
const (
	strengthMarket    = "Strong market opportunity"
	strengthProduct   = "Compelling product differentiation"
	strengthFinancial = "Experienced team with industry knowledge"

	weaknessMarket    = "Market potential needs further validation"
	weaknessProduct   = "Product uniqueness could be improved"
	weaknessFinancial = "Team may need additional expertise or advisors"

	recommendMarket    = "Conduct additional market research to validate demand and identify niche opportunities"
	recommendProduct   = "Focus on enhancing your unique value proposition to differentiate from competitors"
	recommendFinancial = "Consider bringing on advisors or team members with more industry experience"

	recommendGoToMarket = "Develop a detailed go-to-market strategy focusing on early adopters"
	recommendMVP        = "Start with a minimal viable product to test market assumptions before full launch"
)

// Compute maps the five answers to sub-scores and an overall score.
//
// Each answer is linearly scaled to 0-100 via value*20, so 1 maps to 20 and
// 5 to 100; a sub-score of 0 is unreachable from valid input. Competition
// intensity is inverted (100 - value*20) because heavier competition lowers
// market favorability. Rounding is round half away from zero at each
// sub-score and again at the aggregate; intermediates are not carried in
// higher precision.
//
// Compute is a pure function: identical answers always produce identical
// results, and failures never produce a partial Result.
func Compute(answers Answers) (*Result, error) {
	for _, id := range QuestionIDs {
		v, ok := answers[id]
		if !ok {
			return nil, &MissingAnswerError{Question: id}
		}
		if v < MinAnswer || v > MaxAnswer {
			return nil, &OutOfRangeError{Question: id, Value: v}
		}
	}

	marketScore := round((scale(answers[MarketPotential]) + invert(scale(answers[CompetitionIntensity]))) / 2)
	productScore := round((scale(answers[ProductDifferentiation]) + scale(answers[ScalabilityPotential])) / 2)
	financialScore := round(scale(answers[TeamExperience]))
	overallScore := round(float64(marketScore+productScore+financialScore) / 3)

	result := &Result{
		MarketScore:     marketScore,
		ProductScore:    productScore,
		FinancialScore:  financialScore,
		OverallScore:    overallScore,
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
	}

	if marketScore >= strongThreshold {
		result.Strengths = append(result.Strengths, strengthMarket)
	} else {
		result.Weaknesses = append(result.Weaknesses, weaknessMarket)
		result.Recommendations = append(result.Recommendations, recommendMarket)
	}

	if productScore >= strongThreshold {
		result.Strengths = append(result.Strengths, strengthProduct)
	} else {
		result.Weaknesses = append(result.Weaknesses, weaknessProduct)
		result.Recommendations = append(result.Recommendations, recommendProduct)
	}

	if financialScore >= strongThreshold {
		result.Strengths = append(result.Strengths, strengthFinancial)
	} else {
		result.Weaknesses = append(result.Weaknesses, weaknessFinancial)
		result.Recommendations = append(result.Recommendations, recommendFinancial)
	}

	result.Recommendations = append(result.Recommendations, recommendGoToMarket, recommendMVP)

	return result, nil
}

// OverallFromSubScores derives the aggregate score from three sub-scores,
// for callers that submit pre-computed scores without an overall value.
func OverallFromSubScores(market, product, financial int) int {
	return round(float64(market+product+financial) / 3)
}

// scale maps a 1-5 answer onto the 0-100 scale.
func scale(answer int) float64 {
	return float64(answer) * 20
}

// invert flips a 0-100 value for negative signals.
func invert(scaled float64) float64 {
	return 100 - scaled
}

func round(v float64) int {
	return int(math.Round(v))
}
