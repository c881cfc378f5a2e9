package model

// ModuleID identifies one dashboard calculator module.
type ModuleID string

const (
	ModulePolicy     ModuleID = "policy"
	ModuleStudent    ModuleID = "student"
	ModuleAttendance ModuleID = "attendance"
	ModuleTax        ModuleID = "tax"
	ModuleFinance    ModuleID = "finance"
	ModuleLoan       ModuleID = "loan"
	ModuleInvestment ModuleID = "investment"
	ModuleSmallBiz   ModuleID = "smallbiz"
	ModuleUtilities  ModuleID = "utilities"
	ModuleDisaster   ModuleID = "disaster"
	ModuleGPA        ModuleID = "gpa"
	ModuleBudget     ModuleID = "budget"
	ModuleInflation  ModuleID = "inflation"
)

// Text carries one bilingual string.
type Text struct {
	EN string `json:"en"`
	BN string `json:"bn"`
}

// FieldDef describes one input field of a module form.
type FieldDef struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ModuleDef is the static metadata for one module.
type ModuleDef struct {
	ID          ModuleID   `json:"id"`
	Title       Text       `json:"title"`
	Description Text       `json:"description"`
	Tags        []string   `json:"tags,omitempty"`
	Fields      []FieldDef `json:"fields"`
}

// Metric is one label/value pair of a module result.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChartPoint is one bar of a module result chart.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ModuleResult is the shared output shape every module computes.
type ModuleResult struct {
	Headline    string       `json:"headline"`
	Metrics     []Metric     `json:"metrics"`
	RiskScore   float64      `json:"risk_score"`
	Chart       []ChartPoint `json:"chart"`
	Suggestions []string     `json:"suggestions"`
}
