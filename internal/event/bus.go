package event

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Type identifies a domain event emitted after a successful write
type Type string

const (
	ProductSaved   Type = "product.saved"
	ProductRemoved Type = "product.removed"
	ReviewSaved    Type = "review.saved"
	ReviewRemoved  Type = "review.removed"
)

// Event is published after the triggering write has committed. Review events
// carry the ID of the product the review belongs to.
type Event struct {
	Type      Type
	ProductID primitive.ObjectID
}

// HandlerFunc consumes one event. Errors are logged by the bus and dropped;
// a failed recomputation never affects the write that triggered it.
type HandlerFunc func(ctx context.Context, ev Event) error

// Bus is an in-process publish/subscribe channel decoupling aggregate
// recomputation from the request path.
type Bus struct {
	ch       chan Event
	handlers []HandlerFunc
	log      *zap.Logger
	wg       sync.WaitGroup
	once     sync.Once
}

// NewBus creates a bus with the given buffer size
func NewBus(buffer int, log *zap.Logger) *Bus {
	if buffer < 1 {
		buffer = 64
	}
	return &Bus{
		ch:  make(chan Event, buffer),
		log: log,
	}
}

// Subscribe registers a handler. Must be called before Start.
func (b *Bus) Subscribe(fn HandlerFunc) {
	b.handlers = append(b.handlers, fn)
}

// Start launches the dispatcher goroutine. Handlers run sequentially per
// event; ctx bounds the work done for each delivery.
func (b *Bus) Start(ctx context.Context) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for ev := range b.ch {
			for _, fn := range b.handlers {
				if err := fn(ctx, ev); err != nil {
					b.log.Error("event handler failed",
						zap.String("event", string(ev.Type)),
						zap.String("product_id", ev.ProductID.Hex()),
						zap.Error(err),
					)
				}
			}
		}
	}()
}

// Publish enqueues an event for the dispatcher. Blocks only when the buffer
// is full.
func (b *Bus) Publish(ev Event) {
	b.ch <- ev
}

// Close stops accepting events and waits for the dispatcher to drain
func (b *Bus) Close() {
	b.once.Do(func() {
		close(b.ch)
	})
	b.wg.Wait()
}
