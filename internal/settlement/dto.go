package settlement

// LineResponse represents one settlement line in API responses
type LineResponse struct {
	UserID     string  `json:"user_id"`
	UserName   string  `json:"user_name"`
	AmountOwed float64 `json:"amount_owed"`
	AmountPaid float64 `json:"amount_paid"`
	Balance    float64 `json:"balance"`
	Status     string  `json:"status"`
}

// ToResponse converts a Line to its API shape in the given currency
func (l *Line) ToResponse(currency string) *LineResponse {
	return &LineResponse{
		UserID:     l.UserID,
		UserName:   l.UserName,
		AmountOwed: l.Owed.Decimal(currency),
		AmountPaid: l.Paid.Decimal(currency),
		Balance:    l.Balance.Decimal(currency),
		Status:     l.Status,
	}
}

// TransferResponse represents one suggested payment
type TransferResponse struct {
	FromID   string  `json:"from_id"`
	FromName string  `json:"from_name"`
	ToID     string  `json:"to_id"`
	ToName   string  `json:"to_name"`
	Amount   float64 `json:"amount"`
}

// CurrencyPlanResponse represents the suggestions for one currency
type CurrencyPlanResponse struct {
	Currency  string              `json:"currency"`
	Transfers []*TransferResponse `json:"transfers"`
}

// ToResponse converts a CurrencyPlan to its API shape
func (p *CurrencyPlan) ToResponse() *CurrencyPlanResponse {
	transfers := make([]*TransferResponse, len(p.Transfers))
	for i, t := range p.Transfers {
		transfers[i] = &TransferResponse{
			FromID:   t.FromID,
			FromName: t.FromName,
			ToID:     t.ToID,
			ToName:   t.ToName,
			Amount:   t.Amount.Decimal(p.Currency),
		}
	}
	return &CurrencyPlanResponse{Currency: p.Currency, Transfers: transfers}
}
