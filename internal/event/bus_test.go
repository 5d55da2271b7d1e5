package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestBusDeliversToAllHandlers(t *testing.T) {
	bus := NewBus(8, zap.NewNop())

	var mu sync.Mutex
	var first, second []Event
	bus.Subscribe(func(ctx context.Context, ev Event) error {
		mu.Lock()
		defer mu.Unlock()
		first = append(first, ev)
		return nil
	})
	bus.Subscribe(func(ctx context.Context, ev Event) error {
		mu.Lock()
		defer mu.Unlock()
		second = append(second, ev)
		return nil
	})
	bus.Start(context.Background())

	productID := primitive.NewObjectID()
	bus.Publish(Event{Type: ProductSaved, ProductID: productID})
	bus.Publish(Event{Type: ReviewSaved, ProductID: productID})
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected both handlers to see 2 events, got %d and %d", len(first), len(second))
	}
	if first[0].Type != ProductSaved || first[1].Type != ReviewSaved {
		t.Error("events delivered out of order")
	}
}

func TestBusSwallowsHandlerErrors(t *testing.T) {
	bus := NewBus(8, zap.NewNop())

	var delivered int
	var mu sync.Mutex
	bus.Subscribe(func(ctx context.Context, ev Event) error {
		return errors.New("recompute failed")
	})
	bus.Subscribe(func(ctx context.Context, ev Event) error {
		mu.Lock()
		defer mu.Unlock()
		delivered++
		return nil
	})
	bus.Start(context.Background())

	bus.Publish(Event{Type: ProductRemoved, ProductID: primitive.NewObjectID()})
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	if delivered != 1 {
		t.Fatalf("a failing handler must not block later handlers, delivered=%d", delivered)
	}
}

func TestBusCloseIsIdempotent(t *testing.T) {
	bus := NewBus(1, zap.NewNop())
	bus.Start(context.Background())

	done := make(chan struct{})
	go func() {
		bus.Close()
		bus.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("double Close deadlocked")
	}
}
