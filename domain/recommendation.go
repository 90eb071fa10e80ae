package domain

// Recommendation tiers, weakest first.
type Recommendation string

const (
	RecommendationPass      Recommendation = "Pass"
	RecommendationCaution   Recommendation = "Caution"
	RecommendationNeutral   Recommendation = "Neutral"
	RecommendationBuy       Recommendation = "Buy"
	RecommendationStrongBuy Recommendation = "Strong Buy"
)

var recommendationColors = map[Recommendation]string{
	RecommendationPass:      "red",
	RecommendationCaution:   "orange",
	RecommendationNeutral:   "yellow",
	RecommendationBuy:       "teal",
	RecommendationStrongBuy: "green",
}

var recommendationRanks = map[Recommendation]int{
	RecommendationPass:      0,
	RecommendationCaution:   1,
	RecommendationNeutral:   2,
	RecommendationBuy:       3,
	RecommendationStrongBuy: 4,
}

// Color returns the display color tag of the tier.
func (r Recommendation) Color() string {
	return recommendationColors[r]
}

// Rank orders tiers from Pass (0) to Strong Buy (4). Unknown tiers rank -1.
func (r Recommendation) Rank() int {
	rank, ok := recommendationRanks[r]
	if !ok {
		return -1
	}
	return rank
}
