package modules

import (
	"fmt"
	"sort"

	"NexusBoard/internal/model"
)

// ComputeFunc is one module's pure computation over its form values.
type ComputeFunc func(values map[string]float64) model.ModuleResult

type entry struct {
	def     model.ModuleDef
	compute ComputeFunc
}

var registry = map[model.ModuleID]entry{}

// register wires a module definition to its compute function. Called
// from init funcs so the module set stays open for extension without a
// central switch.
func register(def model.ModuleDef, fn ComputeFunc) {
	registry[def.ID] = entry{def: def, compute: fn}
}

// Definitions returns module metadata sorted by id for stable output.
func Definitions() []model.ModuleDef {
	out := make([]model.ModuleDef, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.def)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

// Lookup returns a module definition by id.
func Lookup(id model.ModuleID) (model.ModuleDef, bool) {
	e, ok := registry[id]
	return e.def, ok
}

// Compute runs one module. Unknown ids are the only error; missing
// values default to zero inside each module.
func Compute(id model.ModuleID, values map[string]float64) (model.ModuleResult, error) {
	e, ok := registry[id]
	if !ok {
		return model.ModuleResult{}, fmt.Errorf("unknown module: %s", id)
	}
	if values == nil {
		values = map[string]float64{}
	}
	return e.compute(values), nil
}

// RiskLevel buckets a 0-100 risk score for display.
func RiskLevel(score float64) model.Risk {
	if score < 35 {
		return model.RiskLow
	}
	if score < 70 {
		return model.RiskMedium
	}
	return model.RiskHigh
}
