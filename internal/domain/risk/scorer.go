package risk

const (
	minScore = 0
	maxScore = 100
)

// Score evaluates the rule catalogue against the profile and returns the
// clamped composite score together with the labels of every fired rule in
// catalogue order. Pure and deterministic: identical input yields identical
// output on every call.
func Score(p *Profile) (int, []string) {
	total := 0
	var factors []string
	for _, rule := range catalogue {
		if rule.Match(p) {
			total += rule.Points
			factors = append(factors, rule.Label)
		}
	}
	if total > maxScore {
		total = maxScore
	}
	if total < minScore {
		total = minScore
	}
	return total, factors
}
