package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	EventOrderPlaced       = "OrderPlaced"
	EventPostCreated       = "ExchangePostCreated"
	EventCommentAdded      = "ExchangeCommentAdded"
	EventPostStatusChanged = "ExchangePostStatusChanged"
	EventPilotRegistered   = "PilotRegistered"
	CurrentEventVersion    = 1
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order_id / post_id / pilot_id
	Payload       json.RawMessage `json:"payload"`
}

// ---- payloads ----

type OrderLine struct {
	ProductID  string `json:"product_id"`
	Qty        int    `json:"qty"`
	PriceCents int64  `json:"price_cents"`
}

type OrderPlacedPayload struct {
	OrderID       string      `json:"order_id"`
	PilotID       string      `json:"pilot_id,omitempty"`
	Items         []OrderLine `json:"items"`
	SubtotalCents int64       `json:"subtotal_cents"`
	DiscountCents int64       `json:"discount_cents"`
	TotalCents    int64       `json:"total_cents"`
	PromoCode     string      `json:"promo_code,omitempty"`
	Colony        string      `json:"colony"`
}

type PostCreatedPayload struct {
	PostID    string `json:"post_id"`
	Author    string `json:"author"`
	Have      string `json:"have"`
	Want      string `json:"want"`
	Condition string `json:"condition"`
}

type CommentAddedPayload struct {
	PostID    string `json:"post_id"`
	CommentID string `json:"comment_id"`
	Author    string `json:"author"`
}

type PostStatusChangedPayload struct {
	PostID string `json:"post_id"`
	From   string `json:"from"`
	To     string `json:"to"`
}

type PilotRegisteredPayload struct {
	PilotID string `json:"pilot_id"`
	Name    string `json:"name"`
	Faction string `json:"faction"`
}

// New wraps payload into a v1 envelope stamped now.
func New(producer, eventType, correlationID string, payload any) (Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, errors.Wrapf(err, "encode %s payload", eventType)
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  CurrentEventVersion,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		CorrelationID: correlationID,
		Payload:       b,
	}, nil
}

// Unwrap decodes a specific payload out of an envelope.
func Unwrap[T any](env Envelope) (T, error) {
	var t T
	if err := json.Unmarshal(env.Payload, &t); err != nil {
		return t, errors.Wrapf(err, "decode %s payload", env.EventType)
	}
	return t, nil
}

// Publisher is fire-and-forget: a publish failure never fails the user action.
type Publisher interface {
	Publish(ctx context.Context, topic string, env Envelope)
}

type Nop struct{}

func (Nop) Publish(context.Context, string, Envelope) {}

// Recorder keeps everything published, in order.
type Recorder struct {
	mu        sync.Mutex
	published []Published
}

type Published struct {
	Topic    string
	Envelope Envelope
}

func (r *Recorder) Publish(_ context.Context, topic string, env Envelope) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, Published{Topic: topic, Envelope: env})
}

func (r *Recorder) Published() []Published {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Published, len(r.published))
	copy(out, r.published)
	return out
}
