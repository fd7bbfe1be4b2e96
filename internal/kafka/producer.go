package kafka

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/events"
)

// Producer writes storefront events through a buffered inbox drained by one goroutine.
type Producer struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
	log     *zap.Logger

	mu     sync.RWMutex // guards closed against the close of inbox
	closed bool
}

func NewProducer(brokers []string, buf int, log *zap.Logger) *Producer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Producer{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           50 * time.Millisecond,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
		log:     log,
	}
}

func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case <-ctx.Done():
				// flush sisa pesan di inbox sebelum writer ditutup
				for {
					select {
					case m, ok := <-p.inbox:
						if !ok {
							p.closeWriter()
							return
						}
						p.write(m)
					default:
						p.closeWriter()
						return
					}
				}
			case m, ok := <-p.inbox:
				if !ok {
					p.closeWriter()
					return
				}
				p.write(m)
			}
		}
	}()
}

func (p *Producer) write(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		p.log.Warn("kafka write failed", zap.String("topic", m.Topic), zap.Error(err))
	}
}

func (p *Producer) closeWriter() {
	if err := p.w.Close(); err != nil {
		p.log.Warn("kafka writer close", zap.Error(err))
	}
}

// Publish implements events.Publisher. A full inbox drops the event rather than block the caller.
func (p *Producer) Publish(_ context.Context, topic string, env events.Envelope) {
	b, err := json.Marshal(env)
	if err != nil {
		p.log.Error("encode envelope", zap.String("event_type", env.EventType), zap.Error(err))
		return
	}
	m := kafka.Message{
		Topic: topic,
		Key:   events.PartitionKey(env.CorrelationID),
		Value: b,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(env.EventType)},
			{Key: "x-event-version", Value: []byte("1")},
		},
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.log.Warn("producer closed, event dropped", zap.String("event_id", env.EventID), zap.String("topic", topic))
		return
	}
	select {
	case p.inbox <- m:
	default:
		p.log.Warn("producer inbox full, event dropped", zap.String("event_id", env.EventID), zap.String("topic", topic))
	}
}

// Close stops accepting events; the loop flushes what is left and exits.
// Publishing after Close drops the event. Close is idempotent.
func (p *Producer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.inbox)
	}
}

// WaitClosed blocks until the loop has exited.
func (p *Producer) WaitClosed() { <-p.closeCh }
