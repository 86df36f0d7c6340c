// internal/models/budget.go
package models

// CostBreakdownItem is a fixed cost line within the final budget.
type CostBreakdownItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Notes    string  `json:"notes,omitempty"`
}

// VariableCostItem is an adjustable estimated cost within the final budget.
type VariableCostItem struct {
	Description     string  `json:"description"`
	EstimatedAmount float64 `json:"estimated_amount"`
	Currency        string  `json:"currency"`
	Adjustable      bool    `json:"adjustable"`
	Notes           string  `json:"notes,omitempty"`
}

// FinalBudgetSummary is the budget analysis task output.
type FinalBudgetSummary struct {
	TotalTripCost       float64             `json:"total_trip_cost"`
	BudgetLimit         float64             `json:"budget_limit"`
	Currency            string              `json:"currency"`
	WithinBudget        bool                `json:"within_budget"`
	FixedCosts          []CostBreakdownItem `json:"fixed_costs"`
	VariableCosts       []VariableCostItem  `json:"variable_costs"`
	CostComparisonTable []map[string]string `json:"cost_comparison_table"`
	BudgetChartData     map[string]float64  `json:"budget_chart_data"`
	ImportantNotes      []string            `json:"important_notes"`
}

func (f *FinalBudgetSummary) EnsureDefaults() {
	if f.FixedCosts == nil {
		f.FixedCosts = []CostBreakdownItem{}
	}
	if f.VariableCosts == nil {
		f.VariableCosts = []VariableCostItem{}
	}
	if f.CostComparisonTable == nil {
		f.CostComparisonTable = []map[string]string{}
	}
	if f.BudgetChartData == nil {
		f.BudgetChartData = map[string]float64{}
	}
	if f.ImportantNotes == nil {
		f.ImportantNotes = []string{}
	}
}
