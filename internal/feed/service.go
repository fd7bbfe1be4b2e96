// Package feed consumes storefront events and writes them to the log, once per event id.
package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/events"
	"github.com/ariefcatur/gunpla-storefront/internal/storage"
)

type Service struct {
	Store storage.Store
	Log   *zap.Logger
}

// HandleMessage is installed as the kafka consumer handler.
func (s *Service) HandleMessage(ctx context.Context, m kafkago.Message) error {
	var env events.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		// pesan rusak tidak akan pernah bisa diproses, commit saja
		s.Log.Warn("skipping undecodable message", zap.String("topic", m.Topic), zap.Error(err))
		return nil
	}
	return s.Handle(ctx, m.Topic, env)
}

func (s *Service) Handle(ctx context.Context, topic string, env events.Envelope) error {
	dkey := fmt.Sprintf(storage.KeyFeedDedup, env.EventID)
	seen, err := s.Store.Exists(ctx, dkey)
	if err != nil {
		return errors.Wrap(err, "dedup lookup")
	}
	if seen {
		return nil
	}

	fields := []zap.Field{
		zap.String("topic", topic),
		zap.String("event_id", env.EventID),
		zap.String("event_type", env.EventType),
		zap.String("correlation_id", env.CorrelationID),
		zap.Time("occurred_at", env.OccurredAt),
	}
	switch env.EventType {
	case events.EventOrderPlaced:
		p, err := events.Unwrap[events.OrderPlacedPayload](env)
		if err != nil {
			return err
		}
		fields = append(fields, zap.Int("lines", len(p.Items)), zap.Int64("total_cents", p.TotalCents), zap.String("colony", p.Colony))
	case events.EventPostCreated:
		p, err := events.Unwrap[events.PostCreatedPayload](env)
		if err != nil {
			return err
		}
		fields = append(fields, zap.String("have", p.Have), zap.String("want", p.Want))
	case events.EventPostStatusChanged:
		p, err := events.Unwrap[events.PostStatusChangedPayload](env)
		if err != nil {
			return err
		}
		fields = append(fields, zap.String("from", p.From), zap.String("to", p.To))
	case events.EventPilotRegistered:
		p, err := events.Unwrap[events.PilotRegisteredPayload](env)
		if err != nil {
			return err
		}
		fields = append(fields, zap.String("faction", p.Faction))
	}
	s.Log.Info("storefront event", fields...)

	return errors.Wrap(s.Store.Set(ctx, dkey, "1", storage.TTLDedup), "dedup mark")
}
