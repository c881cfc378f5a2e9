package strategy

import "NexusBoard/internal/model"

// Profiles maps each risk-appetite bucket to its hand-tuned decision
// thresholds. Conservative demands a cheaper P/E, a stronger dividend
// and a higher score to buy; aggressive relaxes all three.
var Profiles = map[model.Profile]model.Thresholds{
	model.ProfileConservative: {PEGoodMax: 18, PEOverMin: 30, DivGoodMin: 2.5, BuyScoreMin: 60, SellScoreMax: 52},
	model.ProfileBalanced:     {PEGoodMax: 20, PEOverMin: 35, DivGoodMin: 2, BuyScoreMin: 55, SellScoreMax: 55},
	model.ProfileAggressive:   {PEGoodMax: 24, PEOverMin: 40, DivGoodMin: 1.5, BuyScoreMin: 52, SellScoreMax: 55},
}

// ProfileFor buckets a 0-100 risk-appetite slider value.
func ProfileFor(appetite int) model.Profile {
	switch {
	case appetite <= 33:
		return model.ProfileConservative
	case appetite >= 67:
		return model.ProfileAggressive
	default:
		return model.ProfileBalanced
	}
}

// ApplyThresholdOverrides folds configured per-profile rows over the
// defaults. Zero fields keep the default value, so a partial override
// does not blank the rest of the row. Unknown profile names are
// ignored; config validation rejects them earlier.
func ApplyThresholdOverrides(overrides map[string]model.Thresholds) {
	for name, o := range overrides {
		profile := model.Profile(name)
		t, ok := Profiles[profile]
		if !ok {
			continue
		}
		if o.PEGoodMax > 0 {
			t.PEGoodMax = o.PEGoodMax
		}
		if o.PEOverMin > 0 {
			t.PEOverMin = o.PEOverMin
		}
		if o.DivGoodMin > 0 {
			t.DivGoodMin = o.DivGoodMin
		}
		if o.BuyScoreMin > 0 {
			t.BuyScoreMin = o.BuyScoreMin
		}
		if o.SellScoreMax > 0 {
			t.SellScoreMax = o.SellScoreMax
		}
		Profiles[profile] = t
	}
}

// ThresholdsFor returns the policy row for a profile, falling back to
// balanced for unknown values.
func ThresholdsFor(profile model.Profile) model.Thresholds {
	if t, ok := Profiles[profile]; ok {
		return t
	}
	return Profiles[model.ProfileBalanced]
}
