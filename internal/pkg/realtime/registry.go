package realtime

import (
	"sync"
)

// Conn is one live connection held by a principal. Events arrive on a
// buffered channel; the registry never blocks on a slow consumer.
type Conn struct {
	userID string
	role   string
	ch     chan Event
}

// Events returns the connection's delivery channel. It is closed by the
// cleanup function returned from Register.
func (c *Conn) Events() <-chan Event {
	return c.ch
}

// UserID returns the principal this connection belongs to
func (c *Conn) UserID() string {
	return c.userID
}

// Registry tracks which authenticated principals currently hold live
// connections. One principal may hold several connections (multiple devices
// or tabs); each connection also belongs to its principal's role group.
// Fully transient: rebuilt from zero on process restart.
type Registry struct {
	mu         sync.RWMutex
	bufferSize int
	users      map[string]map[*Conn]struct{}
	roles      map[string]map[*Conn]struct{}
}

// NewRegistry creates a registry whose connections buffer up to bufferSize
// undelivered events before further events are dropped.
func NewRegistry(bufferSize int) *Registry {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	return &Registry{
		bufferSize: bufferSize,
		users:      make(map[string]map[*Conn]struct{}),
		roles:      make(map[string]map[*Conn]struct{}),
	}
}

// Register adds a connection under the principal's connection set and role
// group. The returned cleanup removes it from both, closes the channel, and
// drops the principal's entry once its connection set is empty. Callers must
// authenticate the principal before registering.
func (r *Registry) Register(userID string, role string) (*Conn, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn := &Conn{
		userID: userID,
		role:   role,
		ch:     make(chan Event, r.bufferSize),
	}

	if r.users[userID] == nil {
		r.users[userID] = make(map[*Conn]struct{})
	}
	r.users[userID][conn] = struct{}{}

	if r.roles[role] == nil {
		r.roles[role] = make(map[*Conn]struct{})
	}
	r.roles[role][conn] = struct{}{}

	cleanup := func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		delete(r.users[userID], conn)
		if len(r.users[userID]) == 0 {
			delete(r.users, userID)
		}
		delete(r.roles[role], conn)
		if len(r.roles[role]) == 0 {
			delete(r.roles, role)
		}
		close(conn.ch)
	}

	return conn, cleanup
}

// IsOnline reports whether the principal holds at least one live connection
func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users[userID]) > 0
}

// ConnectionsFor returns the number of live connections for a principal
func (r *Registry) ConnectionsFor(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users[userID])
}

// ConnectionsForRole returns the number of live connections across all
// principals currently holding the role
func (r *Registry) ConnectionsForRole(role string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.roles[role])
}
