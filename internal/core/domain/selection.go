package domain

// Candidate pairs a creative with its owning campaign and the campaign's
// declared targets, as fetched for one slot.
type Candidate struct {
	Creative Creative
	Campaign Campaign
	Targets  []Target
}

// PickByPriority chooses one candidate among the eligible set. The highest
// campaign priority wins; ties are broken uniformly at random using intn,
// which must behave like rand.Intn. Returns nil for an empty set.
//
// Tie-breaking is intentionally non-deterministic per call: repeated
// identical requests may yield different creatives when several campaigns
// tie at the top priority.
func PickByPriority(candidates []Candidate, intn func(n int) int) *Candidate {
	if len(candidates) == 0 {
		return nil
	}
	max := candidates[0].Campaign.Priority
	for i := 1; i < len(candidates); i++ {
		if p := candidates[i].Campaign.Priority; p > max {
			max = p
		}
	}
	top := make([]int, 0, len(candidates))
	for i := range candidates {
		if candidates[i].Campaign.Priority == max {
			top = append(top, i)
		}
	}
	return &candidates[top[intn(len(top))]]
}
