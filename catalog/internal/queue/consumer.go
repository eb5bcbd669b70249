package queue

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// EventHandler receives every decoded catalog event in partition order.
type EventHandler func(ctx context.Context, ev model.Event) error

type Consumer struct {
	handle EventHandler
	log    *zap.Logger
}

var _ sarama.ConsumerGroupHandler = (*Consumer)(nil)

func NewConsumer(handle EventHandler, log *zap.Logger) *Consumer {
	return &Consumer{
		handle: handle,
		log:    log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks undecodable messages so they are not redelivered.
// A handler failure ends the claim before anything later is marked, so the
// next session resumes from the failed message.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			var ev model.Event
			if err := jsoniter.Unmarshal(message.Value, &ev); err != nil {
				consumer.log.Error("decode event", zap.Error(err), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			}
			if err := consumer.handle(session.Context(), ev); err != nil {
				consumer.log.Error("handle event", zap.Error(err), zap.Int64("offset", message.Offset))
				return errors.Wrapf(err, "handle offset %d", message.Offset)
			}
			consumer.log.Debug("event claimed",
				zap.String("entity", ev.Entity), zap.String("id", ev.ID),
				zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
