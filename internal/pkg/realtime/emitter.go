package realtime

import "log/slog"

// Emitter fans events out to live connections. Delivery is at-most-once and
// best-effort: a full connection buffer or an empty registry means the event
// is logged and dropped, and no method ever reports an error to the mutation
// path that triggered it. Events pushed by one goroutine arrive at each
// connection in emit order; the send happens synchronously under the
// registry lock.
type Emitter struct {
	registry *Registry
}

func NewEmitter(registry *Registry) *Emitter {
	return &Emitter{registry: registry}
}

// EmitToUser delivers an event to every connection the principal holds
func (e *Emitter) EmitToUser(userID string, event string, payload interface{}) {
	e.registry.mu.RLock()
	defer e.registry.mu.RUnlock()

	for conn := range e.registry.users[userID] {
		conn.send(Event{Name: event, Payload: payload})
	}
}

// EmitToRoles delivers an event to every connection across all principals
// holding any of the given roles
func (e *Emitter) EmitToRoles(roles []string, event string, payload interface{}) {
	e.registry.mu.RLock()
	defer e.registry.mu.RUnlock()

	for _, role := range roles {
		for conn := range e.registry.roles[role] {
			conn.send(Event{Name: event, Payload: payload})
		}
	}
}

// EmitToAll delivers an event to every live connection
func (e *Emitter) EmitToAll(event string, payload interface{}) {
	e.registry.mu.RLock()
	defer e.registry.mu.RUnlock()

	for _, conns := range e.registry.users {
		for conn := range conns {
			conn.send(Event{Name: event, Payload: payload})
		}
	}
}

// EmitToAllExcept delivers an event to every live connection except those
// held by one principal. Used for informational broadcasts such as typing
// indicators, where the sender already knows.
func (e *Emitter) EmitToAllExcept(userID string, event string, payload interface{}) {
	e.registry.mu.RLock()
	defer e.registry.mu.RUnlock()

	for uid, conns := range e.registry.users {
		if uid == userID {
			continue
		}
		for conn := range conns {
			conn.send(Event{Name: event, Payload: payload})
		}
	}
}

func (c *Conn) send(ev Event) {
	select {
	case c.ch <- ev:
	default:
		// Buffer full: drop rather than block the mutation path
		slog.Debug("realtime event dropped", "event", ev.Name, "user_id", c.userID)
	}
}
