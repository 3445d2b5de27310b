// Package bus is the explicit publish/subscribe channel for calendar
// change events, replacing an implicit cross-page UI event bus.
package bus

import (
	"sync"

	"github.com/rmoreau/loanboard/internal/models"
)

type Handler func(models.CalendarEvent)

type Bus struct {
	mu       sync.Mutex
	handlers []Handler
}

func New() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for every future event. Handlers run
// synchronously, in subscription order, on the publisher's goroutine.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers the event to every subscriber.
func (b *Bus) Publish(ev models.CalendarEvent) {
	b.mu.Lock()
	handlers := append([]Handler(nil), b.handlers...)
	b.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}
