package dto

import (
	"time"

	"github.com/smart-paisa/backend/internal/application/usecase/dashboard"
)

// HabitEntryResponse represents one category row of the habit report.
type HabitEntryResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Share    string `json:"share"`
	Advice   string `json:"advice"`
}

// ExpiringCardResponse represents one card flagged by the expiry check.
type ExpiringCardResponse struct {
	AccountID  string    `json:"account_id"`
	Name       string    `json:"name"`
	CardExpiry string    `json:"card_expiry"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// OverviewResponse represents the dashboard overview.
type OverviewResponse struct {
	TotalIncome   string                 `json:"total_income"`
	TotalExpense  string                 `json:"total_expense"`
	NetBalance    string                 `json:"net_balance"`
	HealthScore   string                 `json:"health_score"`
	HabitReport   []HabitEntryResponse   `json:"habit_report"`
	ExpiringCards []ExpiringCardResponse `json:"expiring_cards"`
}

// ToOverviewResponse converts the dashboard aggregates to a DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	habits := make([]HabitEntryResponse, 0, len(output.HabitReport))
	for _, entry := range output.HabitReport {
		habits = append(habits, HabitEntryResponse{
			Category: string(entry.Category),
			Amount:   entry.Amount.StringFixed(2),
			Share:    entry.Share,
			Advice:   entry.Advice,
		})
	}

	cards := make([]ExpiringCardResponse, 0, len(output.ExpiringCards))
	for _, card := range output.ExpiringCards {
		cards = append(cards, ExpiringCardResponse{
			AccountID:  card.Account.ID.String(),
			Name:       card.Account.Name,
			CardExpiry: card.Account.CardExpiry,
			ExpiresAt:  card.ExpiresAt,
		})
	}

	return OverviewResponse{
		TotalIncome:   output.TotalIncome.StringFixed(2),
		TotalExpense:  output.TotalExpense.StringFixed(2),
		NetBalance:    output.NetBalance.StringFixed(2),
		HealthScore:   output.HealthScore,
		HabitReport:   habits,
		ExpiringCards: cards,
	}
}
