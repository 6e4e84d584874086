package event

// Handler processes specific event types
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

type funcHandler struct {
	types []EventType
	fn    func(GameEvent)
}

func (h *funcHandler) HandleEvent(event GameEvent) { h.fn(event) }
func (h *funcHandler) EventTypes() []EventType     { return h.types }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - A handler removed mid-dispatch receives no later events of the batch
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Unregister removes handler from every type it declared
// Slices are rebuilt rather than edited so an in-flight dispatch loop is unaffected
func (r *Router) Unregister(handler Handler) bool {
	removed := false
	for _, t := range handler.EventTypes() {
		current := r.handlers[t]
		next := make([]Handler, 0, len(current))
		for _, h := range current {
			if h == handler {
				removed = true
				continue
			}
			next = append(next, h)
		}
		if len(next) == 0 {
			delete(r.handlers, t)
		} else {
			r.handlers[t] = next
		}
	}
	return removed
}

// Subscribe registers fn for the given types and returns its unsubscribe func
func (r *Router) Subscribe(fn func(GameEvent), types ...EventType) (unsubscribe func()) {
	h := &funcHandler{types: types, fn: fn}
	r.Register(h)
	return func() { r.Unregister(h) }
}

// DispatchAll consumes all pending events and routes to handlers in FIFO order
// Returns the number of events consumed
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		r.Dispatch(ev)
	}
	return len(events)
}

// Dispatch routes a single event immediately, bypassing the queue
func (r *Router) Dispatch(ev GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ev)
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
