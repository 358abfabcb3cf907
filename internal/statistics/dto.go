package statistics

// OverviewResponse summarizes the caller's activity inside the period
// window. total_owed covers unsettled shared expense shares and is not
// windowed.
type OverviewResponse struct {
	TotalExpense     float64 `json:"total_expense"`
	TotalIncome      float64 `json:"total_income"`
	Balance          float64 `json:"balance"`
	TotalOwed        float64 `json:"total_owed"`
	TransactionCount int     `json:"transaction_count"`
}

// CategoryTotalResponse is one expense category's windowed total
type CategoryTotalResponse struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Color        string  `json:"color"`
	Total        float64 `json:"total"`
}
