package expense

// CreateExpenseRequest represents the request to create a shared expense.
// Custom split amounts are keyed by participant email and must sum to the
// total exactly.
type CreateExpenseRequest struct {
	Title             string             `json:"title" validate:"required,min=1,max=255"`
	Description       string             `json:"description,omitempty"`
	TotalAmount       float64            `json:"total_amount" validate:"required,gt=0"`
	Currency          string             `json:"currency,omitempty"`
	ParticipantEmails []string           `json:"participant_emails"`
	SplitType         string             `json:"split_type,omitempty"` // equal (default) or custom
	CustomAmounts     map[string]float64 `json:"custom_amounts,omitempty"`
	CategoryID        *string            `json:"category_id,omitempty"`
	Date              string             `json:"date,omitempty"` // RFC 3339; defaults to now
	ReceiptURL        *string            `json:"receipt_url,omitempty"`
}

// ParticipantResponse represents one share in API responses
type ParticipantResponse struct {
	UserID    string  `json:"user_id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Amount    float64 `json:"amount"`
	Paid      float64 `json:"paid"`
	Confirmed bool    `json:"confirmed"`
}

// ExpenseResponse represents the response for a shared expense
type ExpenseResponse struct {
	ID           string                 `json:"id"`
	CreatorID    string                 `json:"creator_id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	TotalAmount  float64                `json:"total_amount"`
	Currency     string                 `json:"currency"`
	SplitType    string                 `json:"split_type"`
	Status       string                 `json:"status"`
	CategoryID   *string                `json:"category_id,omitempty"`
	Date         string                 `json:"date"`
	ReceiptURL   *string                `json:"receipt_url,omitempty"`
	CreatedAt    string                 `json:"created_at"`
	Participants []*ParticipantResponse `json:"participants"`
}

// ToResponse converts a SharedExpense model to an ExpenseResponse DTO
func (e *SharedExpense) ToResponse() *ExpenseResponse {
	participants := make([]*ParticipantResponse, len(e.Shares))
	for i, s := range e.Shares {
		participants[i] = &ParticipantResponse{
			UserID:    s.UserID,
			Email:     s.Email,
			FullName:  s.FullName,
			Amount:    s.Owed.Decimal(e.Currency),
			Paid:      s.Paid.Decimal(e.Currency),
			Confirmed: s.Confirmed,
		}
	}
	return &ExpenseResponse{
		ID:           e.ID,
		CreatorID:    e.CreatorID,
		Title:        e.Title,
		Description:  e.Description,
		TotalAmount:  e.Total.Decimal(e.Currency),
		Currency:     e.Currency,
		SplitType:    string(e.SplitType),
		Status:       e.Status,
		CategoryID:   e.CategoryID,
		Date:         e.Date.Format("2006-01-02T15:04:05Z07:00"),
		ReceiptURL:   e.ReceiptURL,
		CreatedAt:    e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Participants: participants,
	}
}
