package queue_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/queue"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 4)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 0, Value: []byte(`{"entity":"book","action":"create","id":"1","occurred_at":"2024-05-01T12:00:00Z"}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 1, Value: []byte(`not json`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 2, Value: []byte(`{"entity":"genre","action":"delete","id":"2","occurred_at":"2024-05-01T12:00:01Z"}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 3, Value: []byte(`{"entity":"author","action":"update","id":"3","occurred_at":"2024-05-01T12:00:02Z"}`)}
	close(claim.messages)

	var got []model.Event
	c := queue.NewConsumer(func(_ context.Context, ev model.Event) error {
		got = append(got, ev)
		if ev.Entity == "genre" {
			return errors.New("sink unavailable")
		}
		return nil
	}, zap.NewNop())

	session := &fakeSession{ctx: context.Background()}
	require.Error(t, c.ConsumeClaim(session, claim))

	// nothing after the failed event is handled or marked
	require.Len(t, got, 2)
	require.Equal(t, model.Event{
		Entity: "book", Action: model.ActionCreate, ID: "1",
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}, got[0])
	require.Equal(t, []int64{0, 1}, session.marked)
	require.Len(t, claim.messages, 1)
}

func TestConsumer_ClaimDrained(t *testing.T) {
	t.Parallel()
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 2)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 7, Value: []byte(`{"entity":"book","action":"delete","id":"9"}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 8, Value: []byte(`{"entity":"book","action":"create","id":"10"}`)}
	close(claim.messages)

	n := 0
	c := queue.NewConsumer(func(context.Context, model.Event) error {
		n++
		return nil
	}, zap.NewNop())
	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, c.ConsumeClaim(session, claim))
	require.Equal(t, 2, n)
	require.Equal(t, []int64{7, 8}, session.marked)
}
