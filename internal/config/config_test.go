package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "STORAGE_BACKEND", "KAFKA_BROKERS", "PROMO_CODE", "LOGIN_DELAY", "EXCHANGE_STRICT_COMMENTS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "memory", cfg.StorageBackend)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "GUNDAM10", cfg.PromoCode)
	assert.Equal(t, 10, cfg.PromoPercent)
	assert.Equal(t, time.Second, cfg.LoginDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.RegisterDelay)
	assert.False(t, cfg.StrictComments)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "REDIS")
	t.Setenv("KAFKA_BROKERS", "k1:9092, ,k2:9092")
	t.Setenv("PAYMENT_DELAY", "250ms")
	t.Setenv("EXCHANGE_STRICT_COMMENTS", "true")
	t.Setenv("FEED_WORKERS", "nope")
	t.Setenv("PROMO_PERCENT", "250")

	cfg := Load()

	assert.Equal(t, "redis", cfg.StorageBackend)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 250*time.Millisecond, cfg.PaymentDelay)
	assert.True(t, cfg.StrictComments)
	assert.Equal(t, 4, cfg.FeedWorkers)
	assert.Equal(t, 100, cfg.PromoPercent)
}

func TestLoad_ClampsCounts(t *testing.T) {
	t.Setenv("FEED_WORKERS", "0")
	t.Setenv("PROMO_PERCENT", "-5")

	cfg := Load()

	assert.Equal(t, 1, cfg.FeedWorkers)
	assert.Equal(t, 0, cfg.PromoPercent)
}
