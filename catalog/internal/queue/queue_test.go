package queue_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/queue"
	"github.com/Astemirdum/catalog-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBreaker() circuit_breaker.CircuitBreaker {
	return circuit_breaker.New(circuit_breaker.Config{
		RecordLength:     2,
		Timeout:          time.Minute,
		Percentile:       1,
		RecoveryRequests: 1,
	})
}

func TestEnqueuer_Enqueue(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev model.Event
		if err := jsoniter.Unmarshal(val, &ev); err != nil {
			return err
		}
		require.Equal(t, "book", ev.Entity)
		require.Equal(t, model.ActionCreate, ev.Action)
		require.Equal(t, "7", ev.ID)
		require.Equal(t, "librarian", ev.Actor)
		return nil
	})

	q := queue.NewEnqueuer(producer, "catalog-events", newBreaker(), zap.NewNop())
	err := q.Enqueue(context.Background(), model.Event{
		Entity:     "book",
		Action:     model.ActionCreate,
		ID:         "7",
		Actor:      "librarian",
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, q.Close())
}

func TestEnqueuer_BreakerOpens(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	cb := newBreaker()
	q := queue.NewEnqueuer(producer, "catalog-events", cb, zap.NewNop())
	ev := model.Event{Entity: "genre", Action: model.ActionDelete, ID: "3"}

	require.ErrorIs(t, q.Enqueue(context.Background(), ev), sarama.ErrOutOfBrokers)
	require.ErrorIs(t, q.Enqueue(context.Background(), ev), sarama.ErrOutOfBrokers)
	require.Equal(t, circuit_breaker.Open, cb.State())

	// the producer is not touched while the breaker is open
	require.ErrorIs(t, q.Enqueue(context.Background(), ev), circuit_breaker.ErrOpenCB)
	require.NoError(t, q.Close())
}

func TestNoop(t *testing.T) {
	t.Parallel()
	q := queue.NewNoop()
	require.NoError(t, q.Enqueue(context.Background(), model.Event{}))
	require.NoError(t, q.Close())
}
