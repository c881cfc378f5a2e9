package modules

import (
	"math"
	"testing"

	"NexusBoard/internal/model"
)

func metric(t *testing.T, res model.ModuleResult, label string) string {
	t.Helper()
	for _, m := range res.Metrics {
		if m.Label == label {
			return m.Value
		}
	}
	t.Fatalf("metric %q not found in %+v", label, res.Metrics)
	return ""
}

func TestDefinitionsCompleteAndSorted(t *testing.T) {
	defs := Definitions()
	if len(defs) != 13 {
		t.Fatalf("expected 13 module definitions, got %d", len(defs))
	}
	for i := 1; i < len(defs); i++ {
		if defs[i-1].ID >= defs[i].ID {
			t.Errorf("definitions not sorted: %s before %s", defs[i-1].ID, defs[i].ID)
		}
	}
	for _, d := range defs {
		if d.Title.EN == "" || d.Title.BN == "" {
			t.Errorf("module %s missing bilingual title", d.ID)
		}
		if len(d.Fields) == 0 {
			t.Errorf("module %s has no fields", d.ID)
		}
	}
}

func TestComputeUnknownModule(t *testing.T) {
	if _, err := Compute("nope", nil); err == nil {
		t.Fatal("expected error for unknown module id")
	}
}

func TestSalaryTaxSlabs(t *testing.T) {
	tests := []struct {
		monthly float64
		wantTax float64
	}{
		{0, 0},
		{25000, 0},       // annual 300k, below first slab
		{50000, 20000},   // annual 600k: 100k*5% + 150k*10%
		{100000, 105000}, // annual 1.2m: 5k + 30k + 60k + 10k
		{200000, 382500}, // annual 2.4m reaches the 25% slab
	}
	for _, tc := range tests {
		_, tax := salaryTax(tc.monthly)
		if math.Abs(tax-tc.wantTax) > 1e-9 {
			t.Errorf("salaryTax(%.0f) = %.2f, want %.2f", tc.monthly, tax, tc.wantTax)
		}
	}
}

func TestTaxModuleVATDefaultVsExplicitZero(t *testing.T) {
	withDefault, err := Compute(model.ModuleTax, map[string]float64{"vatSales": 100000})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, withDefault, "VAT"); got != "BDT 15,000" {
		t.Errorf("default VAT rate: got %q, want BDT 15,000", got)
	}

	explicitZero, err := Compute(model.ModuleTax, map[string]float64{"vatSales": 100000, "vatRate": 0})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, explicitZero, "VAT"); got != "BDT 0" {
		t.Errorf("explicit zero VAT rate: got %q, want BDT 0", got)
	}
}

func TestStudentPassFail(t *testing.T) {
	pass, err := Compute(model.ModuleStudent, map[string]float64{
		"exam": 30, "quiz": 5, "assignment": 5, "totalClasses": 20, "attended": 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	// attendance 50% -> 5 marks, total 45
	if pass.Headline != "Pass Likely" {
		t.Errorf("got headline %q, want Pass Likely", pass.Headline)
	}
	if got := metric(t, pass, "Status"); got != "Pass" {
		t.Errorf("status = %q, want Pass", got)
	}
	if pass.RiskScore != 55 {
		t.Errorf("risk = %v, want 55", pass.RiskScore)
	}

	fail, err := Compute(model.ModuleStudent, map[string]float64{"exam": 20, "totalClasses": 20, "attended": 20})
	if err != nil {
		t.Fatal(err)
	}
	// 20 + 10 attendance marks = 30, below the pass mark
	if fail.Headline != "At Risk" {
		t.Errorf("got headline %q, want At Risk", fail.Headline)
	}
}

func TestAttendanceMarks(t *testing.T) {
	res, err := Compute(model.ModuleAttendance, map[string]float64{"totalClasses": 40, "attended": 30})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, res, "Marks"); got != "8 / 10" {
		t.Errorf("marks = %q, want 8 / 10", got)
	}
	if got := metric(t, res, "Tip"); got != "On track" {
		t.Errorf("tip = %q, want On track", got)
	}

	empty, err := Compute(model.ModuleAttendance, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, empty, "Marks"); got != "0 / 10" {
		t.Errorf("zero classes marks = %q, want 0 / 10", got)
	}
}

func TestLoanEMI(t *testing.T) {
	// zero rate falls back to straight division
	flat, err := Compute(model.ModuleLoan, map[string]float64{"amount": 120000, "annualRate": 0, "months": 12})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, flat, "EMI"); got != "BDT 10,000" {
		t.Errorf("zero-rate EMI = %q, want BDT 10,000", got)
	}

	// 12% annual over 12 months on 100k: EMI ~ 8884.88
	std, err := Compute(model.ModuleLoan, map[string]float64{"amount": 100000, "annualRate": 12, "months": 12})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, std, "EMI"); got != "BDT 8,885" {
		t.Errorf("EMI = %q, want BDT 8,885", got)
	}
}

func TestInvestmentProjection(t *testing.T) {
	// zero return is plain accumulation
	res, err := Compute(model.ModuleInvestment, map[string]float64{"monthly": 1000, "years": 1, "annualReturn": 0})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, res, "Projected"); got != "BDT 12,000" {
		t.Errorf("projected = %q, want BDT 12,000", got)
	}
	if got := metric(t, res, "Gain"); got != "BDT 0" {
		t.Errorf("gain = %q, want BDT 0", got)
	}
}

func TestFinanceSavingsRate(t *testing.T) {
	res, err := Compute(model.ModuleFinance, map[string]float64{"income": 100000, "expenses": 60000, "invest": 20000})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, res, "Savings"); got != "BDT 20,000" {
		t.Errorf("savings = %q, want BDT 20,000", got)
	}
	// savings rate 0.2 -> risk 80
	if math.Abs(res.RiskScore-80) > 1e-9 {
		t.Errorf("risk = %v, want 80", res.RiskScore)
	}
}

func TestUtilitiesInsight(t *testing.T) {
	res, err := Compute(model.ModuleUtilities, map[string]float64{
		"electricity": 8000, "water": 2000, "internet": 3000, "fuel": 4000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, res, "Monthly"); got != "BDT 17,000" {
		t.Errorf("monthly = %q, want BDT 17,000", got)
	}
	if got := metric(t, res, "Insight"); got != "High" {
		t.Errorf("insight = %q, want High", got)
	}
	if got := metric(t, res, "Largest"); got != "Electricity" {
		t.Errorf("largest = %q, want Electricity", got)
	}
}

func TestSmallBizMargin(t *testing.T) {
	res, err := Compute(model.ModuleSmallBiz, map[string]float64{"revenue": 200000, "cost": 150000})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, res, "Margin"); got != "25%" {
		t.Errorf("margin = %q, want 25%%", got)
	}
	if res.RiskScore != 75 {
		t.Errorf("risk = %v, want 75", res.RiskScore)
	}
}

func TestPolicyDefaults(t *testing.T) {
	res, err := Compute(model.ModulePolicy, nil)
	if err != nil {
		t.Fatal(err)
	}
	// default tax 10: household 45, student 50, business 35
	if got := metric(t, res, "Household"); got != "45 / 100" {
		t.Errorf("household = %q, want 45 / 100", got)
	}
	if got := metric(t, res, "Business"); got != "35 / 100" {
		t.Errorf("business = %q, want 35 / 100", got)
	}
	if math.Abs(res.RiskScore-(100-130.0/3)) > 1e-9 {
		t.Errorf("risk = %v, want %v", res.RiskScore, 100-130.0/3)
	}
}

func TestGPAAndChance(t *testing.T) {
	res, err := Compute(model.ModuleGPA, map[string]float64{"marks": 75, "eligibility": 10})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, res, "GPA"); got != "3" {
		t.Errorf("gpa = %q, want 3", got)
	}
	if got := metric(t, res, "Chance"); got != "63%" {
		t.Errorf("chance = %q, want 63%%", got)
	}
}

func TestBudgetStatus(t *testing.T) {
	res, err := Compute(model.ModuleBudget, map[string]float64{
		"income": 50000, "rent": 20000, "food": 15000, "transport": 5000, "other": 15000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, res, "Status"); got != "Deficit" {
		t.Errorf("status = %q, want Deficit", got)
	}
	if got := metric(t, res, "Balance"); got != "BDT -5,000" {
		t.Errorf("balance = %q, want BDT -5,000", got)
	}
}

func TestInflationProjection(t *testing.T) {
	res, err := Compute(model.ModuleInflation, map[string]float64{"base": 10000, "monthlyInfl": 0, "months": 12})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, res, "After"); got != "BDT 10,000" {
		t.Errorf("after = %q, want BDT 10,000", got)
	}
	if res.RiskScore != 0 {
		t.Errorf("risk = %v, want 0", res.RiskScore)
	}
}

func TestDisasterCoverage(t *testing.T) {
	res, err := Compute(model.ModuleDisaster, map[string]float64{
		"population": 1000, "resources": 500, "severity": 80,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := metric(t, res, "Coverage"); got != "50%" {
		t.Errorf("coverage = %q, want 50%%", got)
	}
	if res.RiskScore != 40 {
		t.Errorf("risk = %v, want 40", res.RiskScore)
	}
	if RiskLevel(res.RiskScore) != model.RiskMedium {
		t.Errorf("risk level = %v, want medium", RiskLevel(res.RiskScore))
	}
}

func TestRiskLevelTiers(t *testing.T) {
	tests := []struct {
		score float64
		want  model.Risk
	}{
		{0, model.RiskLow},
		{34.9, model.RiskLow},
		{35, model.RiskMedium},
		{69.9, model.RiskMedium},
		{70, model.RiskHigh},
		{100, model.RiskHigh},
	}
	for _, tc := range tests {
		if got := RiskLevel(tc.score); got != tc.want {
			t.Errorf("RiskLevel(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}
