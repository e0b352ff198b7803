package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suPer8Hu/defi-sim/internal/simulation"
	"go.uber.org/zap"
)

var ErrBadMessage = errors.New("bad simulation event")

type EventHandler func(ctx context.Context, ev simulation.Event) error

type Consumer struct {
	conn        *amqp.Connection
	ch          *amqp.Channel
	queue       string
	concurrency int
	log         *zap.Logger
}

// NewConsumer opens a channel on url with prefetch = concurrency. The queue
// is expected to exist already (NewPublisher declares it).
func NewConsumer(url, queue string, concurrency int, log *zap.Logger) (*Consumer, error) {
	if concurrency <= 0 {
		concurrency = 1
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	//  strict concurrency control
	if err := ch.Qos(concurrency, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("qos: %w", err)
	}
	return &Consumer{conn: conn, ch: ch, queue: queue, concurrency: concurrency, log: log}, nil
}

func (c *Consumer) Close() error {
	_ = c.ch.Close()
	return c.conn.Close()
}

// Run dispatches deliveries to a worker pool until ctx is done. Bad payloads
// and handler errors are nacked without requeue so they land in the DLQ.
func (c *Consumer) Run(ctx context.Context, handle EventHandler) error {
	msgs, err := c.ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	jobs := make(chan amqp.Delivery, c.concurrency*2)

	var wg sync.WaitGroup
	wg.Add(c.concurrency)
	for i := 0; i < c.concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()
			for d := range jobs {
				c.process(ctx, workerID, d, handle)
			}
		}(i)
	}

	defer func() {
		close(jobs)
		wg.Wait()
	}()

	// dispatcher
	for {
		select {
		case <-ctx.Done():
			c.log.Info("consumer shutting down")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			jobs <- d
		}
	}
}

func (c *Consumer) process(ctx context.Context, workerID int, d amqp.Delivery, handle EventHandler) {
	ev, err := decodeEvent(d.Body)
	if err != nil {
		c.log.Warn("bad message", zap.Int("worker", workerID), zap.String("message_id", d.MessageId), zap.Error(err))
		_ = d.Nack(false, false)
		return
	}
	if err := handle(ctx, ev); err != nil {
		c.log.Warn("handle event failed", zap.Int("worker", workerID), zap.Uint64("simulation_id", ev.SimulationID), zap.Error(err))
		_ = d.Nack(false, false)
		return
	}
	if err := d.Ack(false); err != nil {
		c.log.Warn("ack failed", zap.Int("worker", workerID), zap.Uint64("simulation_id", ev.SimulationID), zap.Error(err))
	}
}

func decodeEvent(body []byte) (simulation.Event, error) {
	var ev simulation.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return ev, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	if ev.SimulationID == 0 || ev.Status == "" {
		return ev, fmt.Errorf("%w: missing simulation_id or status", ErrBadMessage)
	}
	return ev, nil
}
