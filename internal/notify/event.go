package notify

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/learndesk/billing/internal/domain"
)

// EventType names what happened to a wallet.
type EventType string

const (
	EventCredited           EventType = "wallet.credited"
	EventDebited            EventType = "wallet.debited"
	EventWithdrawalResolved EventType = "wallet.withdrawal_resolved"
)

// Event is the signal emitted after every successful balance mutation and
// withdrawal resolution. Delivery and formatting are the collaborator's
// concern; the ledger only guarantees the payload.
type Event struct {
	ID         uuid.UUID                  `json:"id"`
	Type       EventType                  `json:"type"`
	UserID     int                        `json:"user_id"`
	Category   domain.TransactionCategory `json:"category,omitempty"`
	Amount     decimal.Decimal            `json:"amount"`
	NewBalance decimal.Decimal            `json:"new_balance"`
	OccurredAt time.Time                  `json:"occurred_at"`
}

func NewEvent(eventType EventType, userID int, category domain.TransactionCategory, amount, newBalance decimal.Decimal) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		Category:   category,
		Amount:     amount,
		NewBalance: newBalance,
		OccurredAt: time.Now(),
	}
}
