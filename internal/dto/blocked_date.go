package dto

// AddBlockedDateRequest blocks one date. Date is YYYY-MM-DD.
type AddBlockedDateRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason" validate:"max=255"`
}
