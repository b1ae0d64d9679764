// Package events provides the engine's notification surface: a
// synchronous observer registry that collaborators (renderers, bot
// drivers) subscribe to. Handlers run inline during the action that
// raised the event and must not call back into mutating engine methods.
package events

import (
	"log/slog"
	"sync"

	"github.com/mcoot/rummy500-go/internal/model"
)

// Handler receives a single event
type Handler func(ev model.Event)

// Notifier fans events out to subscribed handlers synchronously, in
// subscription order
type Notifier struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]Handler
	logger *slog.Logger
}

// NewNotifier creates a Notifier
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{
		subs:   make(map[int]Handler),
		logger: logger.With(slog.String("component", "events")),
	}
}

// Subscribe registers a handler and returns a function that removes it
func (n *Notifier) Subscribe(h Handler) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subs[id] = h

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// Publish delivers the event to every subscribed handler before returning
func (n *Notifier) Publish(ev model.Event) {
	n.mu.RLock()
	handlers := make([]Handler, 0, len(n.subs))
	for id := 0; id < n.nextID; id++ {
		if h, ok := n.subs[id]; ok {
			handlers = append(handlers, h)
		}
	}
	n.mu.RUnlock()

	n.logger.Debug("event published",
		slog.String("type", string(ev.Type)),
		slog.String("game_id", string(ev.GameID)),
		slog.String("player_id", string(ev.PlayerID)),
	)

	for _, h := range handlers {
		h(ev)
	}
}

// SubscriberCount returns the number of subscribed handlers
func (n *Notifier) SubscriberCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}
