package queue

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Enqueuer publishes catalog change events.
type Enqueuer interface {
	Enqueue(ctx context.Context, ev model.Event) error
	Close() error
}

func NewEnqueuer(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker, log *zap.Logger) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		topic:    topic,
		cb:       cb,
		log:      log.Named("queue"),
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func (q *enqueuerImpl) Enqueue(_ context.Context, ev model.Event) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: q.topic,
		Key:   sarama.StringEncoder(ev.Entity + ":" + ev.ID),
		Value: sarama.ByteEncoder(data),
	}
	return q.cb.Call(func() error {
		partition, offset, err := q.producer.SendMessage(msg)
		if err != nil {
			return errors.Wrap(err, "send message")
		}
		q.log.Debug("event sent",
			zap.String("entity", ev.Entity), zap.String("action", string(ev.Action)),
			zap.Int32("partition", partition), zap.Int64("offset", offset))
		return nil
	})
}

func (q *enqueuerImpl) Close() error {
	return q.producer.Close()
}

// NewNoop is used when no broker is configured.
func NewNoop() Enqueuer {
	return noop{}
}

type noop struct{}

func (noop) Enqueue(context.Context, model.Event) error { return nil }

func (noop) Close() error { return nil }
