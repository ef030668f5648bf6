package internal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shopify/sarama"

	"github.com/DrGermanius/paysettle/internal/model"
)

func NewKafkaProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(brokers, config)
}

// KafkaSender publishes payment confirmations for the mail service, keyed by
// order code so redeliveries of one order land on the same partition.
type KafkaSender struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaSender(producer sarama.SyncProducer, topic string) *KafkaSender {
	return &KafkaSender{producer: producer, topic: topic}
}

func (s KafkaSender) Send(_ context.Context, n model.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(n.OrderCode),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

func (s KafkaSender) Close() error {
	return s.producer.Close()
}
