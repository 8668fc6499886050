package queue

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// AMQPQueue publishes JSON payloads to durable RabbitMQ queues named after
// the topic. Subscribers receive the raw message body ([]byte).
type AMQPQueue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex
	log  *zap.Logger

	declared map[string]bool
	done     sync.WaitGroup
}

func DialAMQP(url string, log *zap.Logger) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to queue: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open queue channel: %w", err)
	}
	return &AMQPQueue{conn: conn, ch: ch, log: log, declared: map[string]bool{}}, nil
}

func (q *AMQPQueue) declare(topic string) error {
	if q.declared[topic] {
		return nil
	}
	_, err := q.ch.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", topic, err)
	}
	q.declared[topic] = true
	return nil
}

func (q *AMQPQueue) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	// amqp.Channel is not safe for concurrent publishing
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.declare(topic); err != nil {
		return err
	}
	return q.ch.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Subscribe consumes topic with manual acks. A failed delivery is requeued
// once; a redelivered message that fails again is dropped.
func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	if err := q.declare(topic); err != nil {
		q.mu.Unlock()
		return err
	}
	msgs, err := q.ch.Consume(
		topic,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	q.mu.Unlock()
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	q.done.Add(1)
	go func() {
		defer q.done.Done()
		for d := range msgs {
			if err := handler(d.Body); err != nil {
				q.log.Warn("message handling failed",
					zap.String("topic", topic), zap.Bool("redelivered", d.Redelivered), zap.Error(err))
				_ = d.Nack(false, !d.Redelivered)
				continue
			}
			_ = d.Ack(false)
		}
	}()
	return nil
}

// NotifyClose exposes broker disconnects so long-running consumers can exit.
func (q *AMQPQueue) NotifyClose() <-chan *amqp.Error {
	return q.conn.NotifyClose(make(chan *amqp.Error, 1))
}

func (q *AMQPQueue) Close() error {
	chErr := q.ch.Close()
	connErr := q.conn.Close()
	q.done.Wait()
	if chErr != nil {
		return chErr
	}
	return connErr
}
