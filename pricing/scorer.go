package pricing

// Score returns the percentage by which the observed price undercuts the
// reference price. A positive score means the listing is below reference; a
// negative one means it is above. A reference of zero or less scores 0.
func Score(observedPrice, referencePrice float64) float64 {
	if referencePrice <= 0 {
		return 0
	}
	return ((referencePrice - observedPrice) / referencePrice) * 100
}

// Scorer applies the deal-inclusion threshold.
type Scorer struct {
	MinPercent float64
}

// NewScorer creates a Scorer with the given minimum deal percentage.
func NewScorer(minPercent float64) Scorer {
	return Scorer{MinPercent: minPercent}
}

// Qualifies reports whether a score clears the inclusion threshold.
func (s Scorer) Qualifies(score float64) bool {
	return score >= s.MinPercent
}
