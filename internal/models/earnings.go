package models

// PaymentMethod is how a withdrawal is paid out.
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentUPI          PaymentMethod = "upi"
	PaymentPayPal       PaymentMethod = "paypal"
)

// TutorStats summarises earnings computed by the marketplace.
type TutorStats struct {
	Currency           string  `json:"currency"`
	TotalEarnings      float64 `json:"total_earnings"`
	AvailableBalance   float64 `json:"available_balance"`
	WithdrawnAmount    float64 `json:"withdrawn_amount"`
	PendingWithdrawals float64 `json:"pending_withdrawals"`
	CompletedSessions  int     `json:"completed_sessions"`
	PendingSessions    int     `json:"pending_sessions"`
	MonthlySessions    int     `json:"monthly_sessions"`
	MonthlyEarnings    float64 `json:"monthly_earnings"`
}

// Withdrawal is a payout request.
type Withdrawal struct {
	ID             string        `json:"id"`
	TutorID        string        `json:"tutor_id"`
	Amount         float64       `json:"amount"`
	Currency       string        `json:"currency"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	PaymentDetails string        `json:"payment_details"`
	Status         string        `json:"status"`
	AdminNotes     string        `json:"admin_notes,omitempty"`
	CreatedAt      Timestamp     `json:"created_at"`
	ProcessedAt    *Timestamp    `json:"processed_at,omitempty"`
}

// WithdrawalRequest is forwarded to the marketplace after local checks.
type WithdrawalRequest struct {
	Amount         float64       `json:"amount" validate:"gt=0"`
	PaymentMethod  PaymentMethod `json:"payment_method" validate:"required,oneof=bank_transfer upi paypal"`
	PaymentDetails string        `json:"payment_details" validate:"required"`
}
