package dto

import "github.com/noah-isme/tutor-dashboard-api/internal/models"

// EarningsOverview combines stats and withdrawal history.
type EarningsOverview struct {
	Stats       *models.TutorStats  `json:"stats"`
	Withdrawals []models.Withdrawal `json:"withdrawals"`
}
