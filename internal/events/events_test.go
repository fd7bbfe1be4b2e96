package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndUnwrap(t *testing.T) {
	env, err := New("storefront", EventPostCreated, "p-1", PostCreatedPayload{PostID: "p-1", Have: "Zaku"})
	require.NoError(t, err)

	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, CurrentEventVersion, env.EventVersion)
	assert.Equal(t, "p-1", env.CorrelationID)

	p, err := Unwrap[PostCreatedPayload](env)
	require.NoError(t, err)
	assert.Equal(t, "Zaku", p.Have)

	_, err = Unwrap[PostCreatedPayload](Envelope{EventType: "x", Payload: []byte("[")})
	assert.Error(t, err)
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var p Publisher = &r
	p.Publish(context.Background(), TopicOrderPlaced, Envelope{EventID: "e"})
	Nop{}.Publish(context.Background(), TopicOrderPlaced, Envelope{})

	got := r.Published()
	require.Len(t, got, 1)
	assert.Equal(t, TopicOrderPlaced, got[0].Topic)
}
