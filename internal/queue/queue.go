package queue

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-admin/internal/config"
	"github.com/unclebandit/campaign-admin/internal/model"
)

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
	Close() error
}

// InMemoryQueue delivers each published payload to every subscriber of the
// topic on its own goroutine, retrying failed handlers with a linear
// backoff.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
	inflight sync.WaitGroup
	closed   bool

	MaxRetries int
	Backoff    time.Duration
	Log        *zap.Logger
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue(log *zap.Logger) *InMemoryQueue {
	return &InMemoryQueue{
		handlers:   make(map[string][]func(payload any) error),
		MaxRetries: 3,
		Backoff:    500 * time.Millisecond,
		Log:        log,
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return fmt.Errorf("queue closed")
	}
	handlers := q.handlers[topic]
	if len(handlers) == 0 {
		q.mu.Unlock()
		return fmt.Errorf("no subscribers for topic %s", topic)
	}
	q.inflight.Add(len(handlers))
	q.mu.Unlock()

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: q.MaxRetries,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	defer q.inflight.Done()

	for {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		if job.RetryCount > job.MaxRetries {
			q.Log.Error("job permanently failed",
				zap.Int("attempts", job.RetryCount), zap.Any("payload", job.Payload), zap.Error(err))
			return // No requeue
		}
		q.Log.Warn("job failed, retrying",
			zap.Int("attempt", job.RetryCount), zap.Int("max_retries", job.MaxRetries), zap.Error(err))

		time.Sleep(time.Duration(job.RetryCount) * q.Backoff)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Close rejects further publishes and waits for in-flight jobs.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.inflight.Wait()
	return nil
}

// NopQueue drops everything. Used when QUEUE_DRIVER=none.
type NopQueue struct{}

func (NopQueue) Publish(string, any) error                       { return nil }
func (NopQueue) Subscribe(string, func(payload any) error) error { return nil }
func (NopQueue) Close() error                                    { return nil }

// DecodeChangeEvent accepts an event as published in-process or as the
// JSON body delivered by a broker.
func DecodeChangeEvent(payload any) (model.ChangeEvent, error) {
	switch p := payload.(type) {
	case model.ChangeEvent:
		return p, nil
	case *model.ChangeEvent:
		return *p, nil
	case []byte:
		var ev model.ChangeEvent
		if err := json.Unmarshal(p, &ev); err != nil {
			return model.ChangeEvent{}, fmt.Errorf("decode change event: %w", err)
		}
		return ev, nil
	default:
		return model.ChangeEvent{}, fmt.Errorf("unexpected payload type %T", payload)
	}
}

// SubscribeChanges registers handle for change events on topic. Payloads
// that cannot be decoded are logged and dropped, never retried.
func SubscribeChanges(q Queue, topic string, log *zap.Logger, handle func(model.ChangeEvent) error) error {
	return q.Subscribe(topic, func(payload any) error {
		ev, err := DecodeChangeEvent(payload)
		if err != nil {
			log.Warn("dropping invalid change event", zap.Error(err))
			return nil
		}
		return handle(ev)
	})
}

// Open builds the queue selected by cfg.Driver.
func Open(cfg config.QueueConfig, log *zap.Logger) (Queue, error) {
	switch cfg.Driver {
	case config.QueueMemory:
		return NewInMemoryQueue(log), nil
	case config.QueueAMQP:
		q, err := DialAMQP(cfg.AMQPURL, log)
		if err != nil {
			return nil, err
		}
		return q, nil
	case config.QueueNone:
		return NopQueue{}, nil
	default:
		return nil, fmt.Errorf("unknown queue driver %q", cfg.Driver)
	}
}
