package kafka

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/warehouse/model"
	"github.com/muhammadheryan/warehouse/utils/logger"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var log = logger.Component("kafka")

// Producer publishes domain events to a single topic keyed by entity id, so
// every event for one product or order lands on the same partition.
type Producer struct {
	writer *kafkago.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	log.Info("kafka producer initialized", zap.String("topic", topic), zap.Strings("brokers", brokers))
	return &Producer{writer: w, topic: topic}
}

func (p *Producer) Publish(ctx context.Context, evt model.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := kafkago.Message{
		Key:   []byte(evt.Key),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
			{Key: "event_id", Value: []byte(evt.ID)},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Producer) Close() error {
	log.Info("kafka producer closing", zap.String("topic", p.topic))
	return p.writer.Close()
}
