package dashboard

import (
	"time"

	"github.com/smart-paisa/backend/internal/domain/entity"
)

// DefaultExpiryWarningWindow is how far ahead the expiring-card check looks.
const DefaultExpiryWarningWindow = 15 * 24 * time.Hour

// ExpiringCard is one card flagged by the expiry check.
type ExpiringCard struct {
	Account   *entity.Account
	ExpiresAt time.Time
}

// ExpiringCards returns the card accounts whose MM/YY expiry falls within the
// warning window from now. A card expires at the end of its expiry month.
// Cards with a missing or malformed expiry are skipped, and already expired
// cards are reported too.
func ExpiringCards(accounts []*entity.Account, now time.Time, window time.Duration) []ExpiringCard {
	deadline := now.Add(window)

	var expiring []ExpiringCard
	for _, acc := range accounts {
		if acc.Kind != entity.AccountKindCard || acc.CardExpiry == "" {
			continue
		}
		expiresAt, ok := parseCardExpiry(acc.CardExpiry, now.Location())
		if !ok {
			continue
		}
		if !expiresAt.After(deadline) {
			expiring = append(expiring, ExpiringCard{Account: acc, ExpiresAt: expiresAt})
		}
	}
	return expiring
}

// parseCardExpiry converts an MM/YY string into the last instant of that
// month. Two-digit years map into the 2000s.
func parseCardExpiry(raw string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation("01/06", raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	// first day of the following month minus a second
	endOfMonth := t.AddDate(0, 1, 0).Add(-time.Second)
	return endOfMonth, true
}
