package core

// Blend combines an interest score and a normalized demand score into a final
// ranked score under the caller's weighting policy. When lowSignal is set the
// caller weights are overridden with the fixed market-heavy fallback, because
// sparse or ambiguous free text makes the passion signal untrustworthy.
//
// The two contributions are the additive terms of the final score and are
// returned separately for explainability.
func Blend(interest, demand, alpha, beta float64, lowSignal bool) (final, interestContribution, marketContribution float64) {
	effAlpha, effBeta := alpha, beta
	if lowSignal {
		effAlpha, effBeta = lowSignalAlpha, lowSignalBeta
	}

	interestContribution = effAlpha * interest
	marketContribution = effBeta * demand
	final = interestContribution + marketContribution
	return final, interestContribution, marketContribution
}
