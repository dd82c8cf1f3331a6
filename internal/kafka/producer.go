package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

type ProducerInterface interface {
	PublishObjectAsync(key []byte, obj interface{})
}

type Producer struct {
	topic  string
	client *kgo.Client
	wg     sync.WaitGroup
}

var _ ProducerInterface = (*Producer)(nil)

func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("no Kafka brokers configured")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("create Kafka producer: %w", err)
	}

	log.Printf("Kafka producer initialized for topic: %s", topic)
	return &Producer{topic: topic, client: client}, nil
}

// Close waits for pending async publishes, then closes the client.
func (p *Producer) Close() {
	p.wg.Wait()
	p.client.Close()
}

func (p *Producer) Publish(key, value []byte) error {
	msg := &kgo.Record{
		Topic: p.topic,
		Key:   key,
		Value: value,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.client.ProduceSync(ctx, msg).FirstErr(); err != nil {
		return err
	}

	log.Printf("Published to %s: key=%s", p.topic, string(key))
	return nil
}

func (p *Producer) PublishAsync(key, value []byte) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.Publish(key, value); err != nil {
			log.Printf("Kafka async publish error: %v", err)
		}
	}()
}

func (p *Producer) PublishObjectAsync(key []byte, obj interface{}) {
	value, err := json.Marshal(obj)
	if err != nil {
		log.Printf("Failed to marshal object for Kafka: %v", err)
		return
	}
	p.PublishAsync(key, value)
}
