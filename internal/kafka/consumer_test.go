package kafka

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func runWorkers(ctx context.Context, c *Consumer, jobs chan kafka.Message, h Handler) <-chan struct{} {
	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.work(ctx, jobs, h)
		}()
	}
	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}

func TestWork_FailingHandlerNeverStallsDispatch(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	var commits atomic.Int32
	c := &Consumer{
		workers: 4,
		log:     zap.New(core),
		commit: func(context.Context, ...kafka.Message) error {
			commits.Add(1)
			return nil
		},
	}

	jobs := make(chan kafka.Message, 8)
	done := runWorkers(context.Background(), c, jobs, func(context.Context, kafka.Message) error {
		return errors.New("dedup lookup: connection refused")
	})

	sent := make(chan struct{})
	go func() {
		for i := 0; i < 600; i++ {
			jobs <- kafka.Message{Topic: "storefront.order.placed", Offset: int64(i)}
		}
		close(jobs)
		close(sent)
	}()

	select {
	case <-sent:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher blocked behind failing workers")
	}
	<-done
	assert.Equal(t, 600, logs.FilterMessage("handler failed").Len())
	assert.Zero(t, commits.Load())
}

func TestWork_CommitsOnSuccess(t *testing.T) {
	var commits atomic.Int32
	c := &Consumer{
		workers: 2,
		log:     zap.NewNop(),
		commit: func(_ context.Context, msgs ...kafka.Message) error {
			commits.Add(int32(len(msgs)))
			return nil
		},
	}
	jobs := make(chan kafka.Message, 10)
	for i := 0; i < 10; i++ {
		jobs <- kafka.Message{Offset: int64(i)}
	}
	close(jobs)

	<-runWorkers(context.Background(), c, jobs, func(context.Context, kafka.Message) error { return nil })
	assert.Equal(t, int32(10), commits.Load())
}

func TestWork_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Consumer{workers: 1, log: zap.NewNop(), backoff: time.Hour}
	jobs := make(chan kafka.Message, 2)
	jobs <- kafka.Message{}
	jobs <- kafka.Message{}

	done := runWorkers(ctx, c, jobs, func(context.Context, kafka.Message) error {
		cancel()
		return errors.New("boom")
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker kept backing off after cancel")
	}
}
