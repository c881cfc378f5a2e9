package modules

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"NexusBoard/internal/calculator"
	"NexusBoard/internal/model"
)

// get reads a form value, falling back only when the key is absent.
// An explicit zero stays zero.
func get(values map[string]float64, key string, fallback float64) float64 {
	if v, ok := values[key]; ok {
		return v
	}
	return fallback
}

func bdt(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return "BDT " + humanize.Commaf(math.Round(v))
}

// num rounds to the given number of decimals before formatting;
// CommafWithDigits alone truncates.
func num(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	p := math.Pow(10, float64(digits))
	return humanize.CommafWithDigits(math.Round(v*p)/p, digits)
}

// salaryTax applies the progressive annual slabs: the first 350k free,
// then 100k at 5%, 300k at 10%, 400k at 15%, 500k at 20%, rest at 25%.
func salaryTax(monthlySalary float64) (annual, tax float64) {
	annual = monthlySalary * 12
	slabs := []struct {
		cap  float64
		rate float64
	}{
		{350000, 0},
		{100000, 0.05},
		{300000, 0.10},
		{400000, 0.15},
		{500000, 0.20},
		{math.Inf(1), 0.25},
	}
	remaining := annual
	for _, s := range slabs {
		take := math.Min(remaining, s.cap)
		tax += take * s.rate
		remaining -= take
		if remaining <= 0 {
			break
		}
	}
	return annual, tax
}

func init() {
	register(model.ModuleDef{
		ID:          model.ModuleTax,
		Title:       model.Text{EN: "Tax Calculator", BN: "ট্যাক্স ক্যালকুলেটর"},
		Description: model.Text{EN: "Salary tax, business tax and VAT—inside the platform.", BN: "স্যালারি ট্যাক্স, ব্যবসা ট্যাক্স ও ভ্যাট—একই প্ল্যাটফর্মে।"},
		Tags:        []string{"calculator", "charts"},
		Fields: []model.FieldDef{
			{Key: "monthlySalary", Label: "Monthly Salary (BDT)"},
			{Key: "businessProfit", Label: "Business Profit (BDT / year)"},
			{Key: "vatSales", Label: "VAT-able Sales (BDT)"},
			{Key: "vatRate", Label: "VAT Rate %"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		monthlySalary := get(values, "monthlySalary", 0)
		businessProfit := get(values, "businessProfit", 0)
		vatSales := get(values, "vatSales", 0)
		vatRate := get(values, "vatRate", 15) / 100

		annual, tax := salaryTax(monthlySalary)
		businessTax := businessProfit * 0.20
		vat := vatSales * vatRate
		total := tax + businessTax + vat
		risk := calculator.Clamp(total/math.Max(1, annual+businessProfit)*100, 0, 100)

		return model.ModuleResult{
			Headline: "Tax Summary",
			Metrics: []model.Metric{
				{Label: "Annual Salary", Value: bdt(annual)},
				{Label: "Salary Tax", Value: bdt(tax)},
				{Label: "Business Tax", Value: bdt(businessTax)},
				{Label: "VAT", Value: bdt(vat)},
			},
			RiskScore: risk,
			Chart: []model.ChartPoint{
				{Name: "Salary Tax", Value: math.Round(tax)},
				{Name: "Business Tax", Value: math.Round(businessTax)},
				{Name: "VAT", Value: math.Round(vat)},
			},
			Suggestions: []string{
				"Keep receipts and categorize expenses to reduce errors.",
				"Review VAT rate based on product/service category.",
				"Consider monthly savings buffer for tax payments.",
			},
		}
	})

	register(model.ModuleDef{
		ID:          model.ModuleStudent,
		Title:       model.Text{EN: "Student Semester Result Predictor", BN: "সেমিস্টার রেজাল্ট প্রেডিক্টর"},
		Description: model.Text{EN: "Predict pass/fail with attendance and assessment marks.", BN: "উপস্থিতি ও নম্বর দিয়ে পাশ/ফেল অনুমান করুন।"},
		Tags:        []string{"charts", "risk"},
		Fields: []model.FieldDef{
			{Key: "exam", Label: "Exam"},
			{Key: "quiz", Label: "Quiz"},
			{Key: "assignment", Label: "Assignment"},
			{Key: "totalClasses", Label: "Total Classes"},
			{Key: "attended", Label: "Attended"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		exam := get(values, "exam", 0)
		quiz := get(values, "quiz", 0)
		assignment := get(values, "assignment", 0)
		totalClasses := get(values, "totalClasses", 0)
		attended := get(values, "attended", 0)

		attendancePct := 0.0
		if totalClasses > 0 {
			attendancePct = calculator.Clamp(attended/totalClasses, 0, 1)
		}
		attendanceMarks := math.Round(attendancePct * 10)
		total := calculator.Clamp(exam+quiz+assignment+attendanceMarks, 0, 100)
		const passMark = 40

		headline := "At Risk"
		status := "Fail"
		if total >= passMark {
			headline = "Pass Likely"
			status = "Pass"
		}

		return model.ModuleResult{
			Headline: headline,
			Metrics: []model.Metric{
				{Label: "Total", Value: fmt.Sprintf("%s / 100", num(total, 0))},
				{Label: "Attendance", Value: fmt.Sprintf("%s%%", num(attendancePct*100, 0))},
				{Label: "Attendance Marks", Value: fmt.Sprintf("%.0f / 10", attendanceMarks)},
				{Label: "Pass Mark", Value: fmt.Sprintf("%d / 100", passMark)},
				{Label: "Status", Value: status},
			},
			RiskScore: calculator.Clamp(100-total, 0, 100),
			Chart: []model.ChartPoint{
				{Name: "Exam", Value: exam},
				{Name: "Quiz", Value: quiz},
				{Name: "Assignment", Value: assignment},
				{Name: "Attendance", Value: attendanceMarks},
			},
			Suggestions: []string{
				"Prioritize weak components (quiz/assignment) for quick gains.",
				"Improve attendance to unlock easy marks.",
				"Plan revision blocks before exam weeks.",
			},
		}
	})

	register(model.ModuleDef{
		ID:          model.ModuleAttendance,
		Title:       model.Text{EN: "Attendance-Based Marks Calculator", BN: "উপস্থিতি-ভিত্তিক নম্বর"},
		Description: model.Text{EN: "Convert attendance percentage into marks.", BN: "উপস্থিতির শতাংশ থেকে নম্বর হিসাব করুন।"},
		Tags:        []string{"calculator"},
		Fields: []model.FieldDef{
			{Key: "totalClasses", Label: "Total Classes"},
			{Key: "attended", Label: "Attended"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		totalClasses := get(values, "totalClasses", 0)
		attended := get(values, "attended", 0)
		pct := 0.0
		if totalClasses > 0 {
			pct = calculator.Clamp(attended/totalClasses, 0, 1)
		}
		marks := math.Round(pct * 10)

		tip := "Needs improvement"
		if pct >= 0.75 {
			tip = "On track"
		}

		return model.ModuleResult{
			Headline: "Attendance Result",
			Metrics: []model.Metric{
				{Label: "Attendance", Value: fmt.Sprintf("%s%%", num(pct*100, 0))},
				{Label: "Marks", Value: fmt.Sprintf("%.0f / 10", marks)},
				{Label: "Classes", Value: fmt.Sprintf("%s / %s", num(attended, 0), num(totalClasses, 0))},
				{Label: "Tip", Value: tip},
			},
			RiskScore: calculator.Clamp((1-pct)*100, 0, 100),
			Chart: []model.ChartPoint{
				{Name: "Attended", Value: attended},
				{Name: "Missed", Value: math.Max(0, totalClasses-attended)},
			},
			Suggestions: []string{
				"Aim for 75%+ attendance to reduce academic risk.",
				"Set weekly reminders before class time.",
			},
		}
	})

	register(model.ModuleDef{
		ID:          model.ModuleLoan,
		Title:       model.Text{EN: "Loan / EMI Calculator", BN: "লোন/ইএমআই ক্যালকুলেটর"},
		Description: model.Text{EN: "Estimate EMI and visualize breakdown.", BN: "ইএমআই ও খরচের বিশ্লেষণ দেখুন।"},
		Fields: []model.FieldDef{
			{Key: "amount", Label: "Loan Amount"},
			{Key: "annualRate", Label: "Interest % (annual)"},
			{Key: "months", Label: "Tenure (months)"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		amount := get(values, "amount", 0)
		annualRate := get(values, "annualRate", 12)
		months := get(values, "months", 12)
		r := annualRate / 100 / 12

		var emi float64
		if r == 0 {
			emi = amount / math.Max(1, months)
		} else {
			pow := math.Pow(1+r, months)
			emi = amount * r * pow / (pow - 1)
		}
		totalPay := emi * months
		interest := totalPay - amount

		return model.ModuleResult{
			Headline: "EMI Summary",
			Metrics: []model.Metric{
				{Label: "EMI", Value: bdt(emi)},
				{Label: "Total Pay", Value: bdt(totalPay)},
				{Label: "Interest", Value: bdt(interest)},
				{Label: "Tenure", Value: fmt.Sprintf("%s months", num(months, 0))},
			},
			RiskScore: calculator.Clamp(interest/math.Max(1, totalPay)*100, 0, 100),
			Chart: []model.ChartPoint{
				{Name: "Principal", Value: math.Round(amount)},
				{Name: "Interest", Value: math.Round(interest)},
			},
			Suggestions: []string{
				"Compare offers: small rate changes impact EMI strongly.",
				"Consider part pre-payment to reduce interest burden.",
			},
		}
	})

	register(model.ModuleDef{
		ID:          model.ModuleInvestment,
		Title:       model.Text{EN: "Investment / Savings Planner", BN: "ইনভেস্টমেন্ট/সেভিংস প্ল্যানার"},
		Description: model.Text{EN: "Project savings growth toward a target.", BN: "লক্ষ্য অনুযায়ী সঞ্চয়ের বৃদ্ধি অনুমান করুন।"},
		Fields: []model.FieldDef{
			{Key: "monthly", Label: "Monthly Savings"},
			{Key: "years", Label: "Years"},
			{Key: "annualReturn", Label: "Expected Return %"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		monthly := get(values, "monthly", 0)
		years := get(values, "years", 5)
		annualReturn := get(values, "annualReturn", 10)
		n := math.Max(1, years*12)
		r := annualReturn / 100 / 12

		var future float64
		if r == 0 {
			future = monthly * n
		} else {
			future = monthly * ((math.Pow(1+r, n) - 1) / r)
		}
		contributed := monthly * n
		gain := future - contributed

		return model.ModuleResult{
			Headline: "Projection",
			Metrics: []model.Metric{
				{Label: "Projected", Value: bdt(future)},
				{Label: "Contributed", Value: bdt(contributed)},
				{Label: "Gain", Value: bdt(gain)},
				{Label: "Horizon", Value: fmt.Sprintf("%s years", num(years, 0))},
			},
			RiskScore: calculator.Clamp(annualReturn/25*100, 0, 100),
			Chart: []model.ChartPoint{
				{Name: "Contributed", Value: math.Round(contributed)},
				{Name: "Gain", Value: math.Round(gain)},
			},
			Suggestions: []string{
				"Increase monthly contribution gradually each year.",
				"Diversify to reduce volatility risk.",
			},
		}
	})

	register(model.ModuleDef{
		ID:          model.ModuleFinance,
		Title:       model.Text{EN: "Personal Finance Simulator", BN: "পার্সোনাল ফাইন্যান্স"},
		Description: model.Text{EN: "Model income, expenses and savings health.", BN: "আয়-ব্যয় ও সঞ্চয়ের অবস্থা বিশ্লেষণ করুন।"},
		Fields: []model.FieldDef{
			{Key: "income", Label: "Monthly Income"},
			{Key: "expenses", Label: "Monthly Expenses"},
			{Key: "invest", Label: "Monthly Investment"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		income := get(values, "income", 0)
		expenses := get(values, "expenses", 0)
		invest := get(values, "invest", 0)
		savings := income - expenses - invest
		savingsRate := 0.0
		if income > 0 {
			savingsRate = savings / income
		}

		return model.ModuleResult{
			Headline: "Finance Health",
			Metrics: []model.Metric{
				{Label: "Income", Value: bdt(income)},
				{Label: "Expenses", Value: bdt(expenses)},
				{Label: "Investments", Value: bdt(invest)},
				{Label: "Savings", Value: bdt(savings)},
			},
			RiskScore: calculator.Clamp((1-calculator.Clamp(savingsRate, 0, 1))*100, 0, 100),
			Chart: []model.ChartPoint{
				{Name: "Expenses", Value: math.Round(expenses)},
				{Name: "Invest", Value: math.Round(invest)},
				{Name: "Savings", Value: math.Round(math.Max(0, savings))},
			},
			Suggestions: []string{
				"Target 20%+ savings rate where possible.",
				"Automate savings on payday.",
			},
		}
	})

	register(model.ModuleDef{
		ID:          model.ModuleUtilities,
		Title:       model.Text{EN: "Citizen Utility Calculators", BN: "সিটিজেন ইউটিলিটি ক্যালকুলেটর"},
		Description: model.Text{EN: "Estimate monthly & yearly utility costs.", BN: "মাসিক ও বার্ষিক ইউটিলিটি খরচ হিসাব করুন।"},
		Fields: []model.FieldDef{
			{Key: "electricity", Label: "Electricity"},
			{Key: "water", Label: "Water"},
			{Key: "internet", Label: "Internet"},
			{Key: "fuel", Label: "Fuel"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		electricity := get(values, "electricity", 0)
		water := get(values, "water", 0)
		internet := get(values, "internet", 0)
		fuel := get(values, "fuel", 0)
		monthly := electricity + water + internet + fuel
		yearly := monthly * 12

		largest := "Electricity"
		largestVal := electricity
		for _, c := range []struct {
			name  string
			value float64
		}{{"Water", water}, {"Internet", internet}, {"Fuel", fuel}} {
			if c.value > largestVal {
				largest, largestVal = c.name, c.value
			}
		}
		insight := "Normal"
		if monthly > 15000 {
			insight = "High"
		}

		return model.ModuleResult{
			Headline: "Utility Cost",
			Metrics: []model.Metric{
				{Label: "Monthly", Value: bdt(monthly)},
				{Label: "Yearly", Value: bdt(yearly)},
				{Label: "Largest", Value: largest},
				{Label: "Insight", Value: insight},
			},
			RiskScore: calculator.Clamp(monthly/30000*100, 0, 100),
			Chart: []model.ChartPoint{
				{Name: "Electricity", Value: electricity},
				{Name: "Water", Value: water},
				{Name: "Internet", Value: internet},
				{Name: "Fuel", Value: fuel},
			},
			Suggestions: []string{
				"Track bills monthly to spot spikes.",
				"Consider energy-saving appliances.",
			},
		}
	})

	register(model.ModuleDef{
		ID:          model.ModuleSmallBiz,
		Title:       model.Text{EN: "Small Business / Freelancer Tools", BN: "স্মল বিজনেস/ফ্রিল্যান্সার টুলস"},
		Description: model.Text{EN: "Track profit/loss and cashflow (offline save).", BN: "লাভ-ক্ষতি ও ক্যাশফ্লো ট্র্যাক করুন (অফলাইনে সেভ)।"},
		Fields: []model.FieldDef{
			{Key: "revenue", Label: "Revenue"},
			{Key: "cost", Label: "Expenses"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		revenue := get(values, "revenue", 0)
		cost := get(values, "cost", 0)
		profit := revenue - cost
		margin := 0.0
		if revenue > 0 {
			margin = profit / revenue
		}

		return model.ModuleResult{
			Headline: "Business Snapshot",
			Metrics: []model.Metric{
				{Label: "Revenue", Value: bdt(revenue)},
				{Label: "Expenses", Value: bdt(cost)},
				{Label: "Profit", Value: bdt(profit)},
				{Label: "Margin", Value: fmt.Sprintf("%s%%", num(margin*100, 0))},
			},
			RiskScore: calculator.Clamp((1-calculator.Clamp(margin, 0, 1))*100, 0, 100),
			Chart: []model.ChartPoint{
				{Name: "Revenue", Value: revenue},
				{Name: "Expenses", Value: cost},
			},
			Suggestions: []string{
				"Separate business and personal expenses.",
				"Review top costs and negotiate suppliers.",
			},
		}
	})

	register(model.ModuleDef{
		ID:          model.ModulePolicy,
		Title:       model.Text{EN: "Policy Impact Simulator", BN: "নীতি প্রভাব সিমুলেটর"},
		Description: model.Text{EN: "Test tax, fuel, subsidies and budget trade-offs.", BN: "কর, জ্বালানি, ভর্তুকি ও বাজেট পরিবর্তনের প্রভাব দেখুন।"},
		Tags:        []string{"charts", "risk"},
		Fields: []model.FieldDef{
			{Key: "tax", Label: "Tax %"},
			{Key: "fuel", Label: "Fuel price delta"},
			{Key: "subsidy", Label: "Subsidy"},
			{Key: "budget", Label: "Budget"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		tax := get(values, "tax", 10)
		fuel := get(values, "fuel", 0)
		subsidy := get(values, "subsidy", 0)
		budget := get(values, "budget", 0)

		household := calculator.Clamp(50+subsidy/10000-fuel/200-tax/2, 0, 100)
		student := calculator.Clamp(55+subsidy/12000-tax/2, 0, 100)
		business := calculator.Clamp(45+budget/15000-tax, 0, 100)
		risk := calculator.Clamp(100-(household+student+business)/3, 0, 100)

		return model.ModuleResult{
			Headline: "Impact Overview",
			Metrics: []model.Metric{
				{Label: "Household", Value: fmt.Sprintf("%s / 100", num(household, 0))},
				{Label: "Student", Value: fmt.Sprintf("%s / 100", num(student, 0))},
				{Label: "Business", Value: fmt.Sprintf("%s / 100", num(business, 0))},
				{Label: "Risk", Value: string(RiskLevel(risk))},
			},
			RiskScore: risk,
			Chart: []model.ChartPoint{
				{Name: "Household", Value: household},
				{Name: "Students", Value: student},
				{Name: "Business", Value: business},
			},
			Suggestions: []string{
				"Balance subsidies with targeted tax relief.",
				"Avoid sudden fuel shocks; phase changes.",
				"Allocate budget to productivity multipliers.",
			},
		}
	})

	register(model.ModuleDef{
		ID:          model.ModuleGPA,
		Title:       model.Text{EN: "GPA / Scholarship Predictor", BN: "জিপিএ/স্কলারশিপ প্রেডিক্টর"},
		Description: model.Text{EN: "Predict GPA and eligibility hints.", BN: "জিপিএ ও যোগ্যতার ধারণা পান।"},
		Fields: []model.FieldDef{
			{Key: "marks", Label: "Overall Marks (0-100)"},
			{Key: "eligibility", Label: "Eligibility Bonus (0-30)"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		marks := get(values, "marks", 0)
		eligibility := get(values, "eligibility", 0)
		gpa := calculator.Clamp(marks/100*4, 0, 4)
		chance := calculator.Clamp(gpa/4*70+eligibility, 0, 100)

		target := "Improve"
		if gpa >= 3.5 {
			target = "Strong"
		}

		return model.ModuleResult{
			Headline: "GPA & Scholarship",
			Metrics: []model.Metric{
				{Label: "GPA", Value: num(gpa, 2)},
				{Label: "Chance", Value: fmt.Sprintf("%s%%", num(chance, 0))},
				{Label: "Target", Value: target},
				{Label: "Tip", Value: "Focus on high-credit courses."},
			},
			RiskScore: calculator.Clamp(100-chance, 0, 100),
			Chart: []model.ChartPoint{
				{Name: "GPA", Value: gpa},
				{Name: "Chance", Value: chance / 25},
			},
			Suggestions: []string{
				"Prioritize weak subjects for GPA lift.",
				"Check eligibility criteria early.",
			},
		}
	})

	register(model.ModuleDef{
		ID:          model.ModuleBudget,
		Title:       model.Text{EN: "Local Budget Planner", BN: "লোকাল বাজেট প্ল্যানার"},
		Description: model.Text{EN: "Build a balanced budget with categories.", BN: "ক্যাটাগরি অনুযায়ী বাজেট বানান।"},
		Fields: []model.FieldDef{
			{Key: "income", Label: "Monthly Income"},
			{Key: "rent", Label: "Rent"},
			{Key: "food", Label: "Food"},
			{Key: "transport", Label: "Transport"},
			{Key: "other", Label: "Other"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		income := get(values, "income", 0)
		rent := get(values, "rent", 0)
		food := get(values, "food", 0)
		transport := get(values, "transport", 0)
		other := get(values, "other", 0)
		spend := rent + food + transport + other
		balance := income - spend

		status := "Deficit"
		if balance >= 0 {
			status = "Balanced"
		}

		return model.ModuleResult{
			Headline: "Budget Plan",
			Metrics: []model.Metric{
				{Label: "Income", Value: bdt(income)},
				{Label: "Spending", Value: bdt(spend)},
				{Label: "Balance", Value: bdt(balance)},
				{Label: "Status", Value: status},
			},
			RiskScore: calculator.Clamp(spend/math.Max(1, income)*100, 0, 100),
			Chart: []model.ChartPoint{
				{Name: "Rent", Value: rent},
				{Name: "Food", Value: food},
				{Name: "Transport", Value: transport},
				{Name: "Other", Value: other},
			},
			Suggestions: []string{
				"Keep rent under 30-35% if possible.",
				"Set a fixed cap for the other category.",
			},
		}
	})

	register(model.ModuleDef{
		ID:          model.ModuleInflation,
		Title:       model.Text{EN: "Cost-of-Living & Inflation Simulator", BN: "ইনফ্লেশন সিমুলেটর"},
		Description: model.Text{EN: "Project expense increase over time.", BN: "সময়ের সাথে খরচ বৃদ্ধির পূর্বাভাস দেখুন।"},
		Fields: []model.FieldDef{
			{Key: "base", Label: "Monthly Expenses Now"},
			{Key: "monthlyInfl", Label: "Monthly Inflation %"},
			{Key: "months", Label: "Months"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		base := get(values, "base", 0)
		monthlyInfl := get(values, "monthlyInfl", 1) / 100
		months := get(values, "months", 12)
		final := base * math.Pow(1+monthlyInfl, months)
		increase := final - base

		return model.ModuleResult{
			Headline: "Cost Projection",
			Metrics: []model.Metric{
				{Label: "Now", Value: bdt(base)},
				{Label: "After", Value: bdt(final)},
				{Label: "Increase", Value: bdt(increase)},
				{Label: "Period", Value: fmt.Sprintf("%s months", num(months, 0))},
			},
			RiskScore: calculator.Clamp(increase/math.Max(1, base)*100, 0, 100),
			Chart: []model.ChartPoint{
				{Name: "Now", Value: base},
				{Name: "After", Value: final},
			},
			Suggestions: []string{
				"Keep an inflation buffer in monthly budget.",
				"Review subscriptions and recurring costs.",
			},
		}
	})

	register(model.ModuleDef{
		ID:          model.ModuleDisaster,
		Title:       model.Text{EN: "Disaster & Environmental Module", BN: "দুর্যোগ ও পরিবেশ"},
		Description: model.Text{EN: "Compute risk and resource allocation warnings.", BN: "ঝুঁকি ও রিসোর্স বরাদ্দের সতর্কতা দেখুন।"},
		Fields: []model.FieldDef{
			{Key: "population", Label: "Population"},
			{Key: "resources", Label: "Resources"},
			{Key: "severity", Label: "Scenario Severity (0-100)"},
		},
	}, func(values map[string]float64) model.ModuleResult {
		population := get(values, "population", 0)
		resources := get(values, "resources", 0)
		severity := get(values, "severity", 50)
		coverage := 0.0
		if population > 0 {
			coverage = calculator.Clamp(resources/population, 0, 1)
		}
		risk := calculator.Clamp(severity*(1-coverage), 0, 100)

		return model.ModuleResult{
			Headline: "Disaster Readiness",
			Metrics: []model.Metric{
				{Label: "Population", Value: num(population, 0)},
				{Label: "Resources", Value: num(resources, 0)},
				{Label: "Coverage", Value: fmt.Sprintf("%s%%", num(coverage*100, 0))},
				{Label: "Severity", Value: fmt.Sprintf("%s / 100", num(severity, 0))},
			},
			RiskScore: risk,
			Chart: []model.ChartPoint{
				{Name: "Coverage", Value: coverage * 100},
				{Name: "Risk", Value: risk},
			},
			Suggestions: []string{
				"Increase resource coverage for worst-case days.",
				"Pre-assign roles and distribution points.",
			},
		}
	})
}
