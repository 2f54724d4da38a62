package domain

import "time"

// PaymentEventType — тип уведомления платёжного провайдера.
type PaymentEventType string

const (
	PaymentEventCompleted PaymentEventType = "completed"
	PaymentEventFailed    PaymentEventType = "failed"
)

// PaymentEvent — верифицированное уведомление платёжного провайдера.
// EventID служит ключом идемпотентности: одно событие применяется не более одного раза.
type PaymentEvent struct {
	EventID     string
	Type        PaymentEventType
	PaymentID   string
	UserID      string
	AmountCents int64
	CreatedAt   time.Time
}

func NewPaymentEvent(eventID string, eventType PaymentEventType, paymentID, userID string, amountCents int64) *PaymentEvent {
	return &PaymentEvent{
		EventID:     eventID,
		Type:        eventType,
		PaymentID:   paymentID,
		UserID:      userID,
		AmountCents: amountCents,
	}
}
