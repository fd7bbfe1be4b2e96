package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler must return nil only when the message may be committed.
type Handler func(ctx context.Context, m kafka.Message) error

type Consumer struct {
	r       *kafka.Reader
	commit  func(ctx context.Context, msgs ...kafka.Message) error
	workers int
	backoff time.Duration
	log     *zap.Logger
}

func NewConsumer(brokers []string, group string, topics []string, workers int, log *zap.Logger) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        group,
		GroupTopics:    topics,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // manual commit
	})
	if workers <= 0 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{r: r, commit: r.CommitMessages, workers: workers, backoff: 200 * time.Millisecond, log: log}
}

// Start blocks until ctx is done or the fetch fails. Workers have exited by the time it returns.
func (c *Consumer) Start(ctx context.Context, h Handler) error {
	defer c.r.Close()

	jobs := make(chan kafka.Message, 256)
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.work(ctx, jobs, h)
		}()
	}
	defer func() {
		close(jobs)
		wg.Wait()
	}()

	for {
		// FetchMessage: offset baru di-commit oleh worker setelah handler sukses
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		select {
		case jobs <- m:
		case <-ctx.Done():
			return nil
		}
	}
}

// work handles and commits; a failure is logged and backed off here so the
// dispatcher never waits on a worker's error. Uncommitted messages are redelivered.
func (c *Consumer) work(ctx context.Context, jobs <-chan kafka.Message, h Handler) {
	for m := range jobs {
		if ctx.Err() != nil {
			return
		}
		err := h(ctx, m)
		if err == nil {
			if err = c.commit(ctx, m); err == nil {
				continue
			}
			c.log.Warn("commit failed", zap.String("topic", m.Topic), zap.Int64("offset", m.Offset), zap.Error(err))
		} else {
			c.log.Warn("handler failed", zap.String("topic", m.Topic), zap.Int64("offset", m.Offset), zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(c.backoff):
		}
	}
}
