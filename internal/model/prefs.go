package model

import "time"

// PrefsState is the persisted user preference state.
type PrefsState struct {
	Language     string                          `json:"language"`
	Onboarded    bool                            `json:"onboarded"`
	RiskAppetite int                             `json:"risk_appetite"`
	ModuleValues map[ModuleID]map[string]float64 `json:"module_values,omitempty"`
	UpdatedAt    time.Time                       `json:"updated_at"`
}
