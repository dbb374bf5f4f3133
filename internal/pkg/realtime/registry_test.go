package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndCleanup(t *testing.T) {
	registry := NewRegistry(4)

	conn, cleanup := registry.Register("user-1", "employee")
	require.NotNil(t, conn)
	assert.True(t, registry.IsOnline("user-1"))
	assert.Equal(t, 1, registry.ConnectionsFor("user-1"))
	assert.Equal(t, 1, registry.ConnectionsForRole("employee"))

	cleanup()
	assert.False(t, registry.IsOnline("user-1"))
	assert.Equal(t, 0, registry.ConnectionsFor("user-1"))
	assert.Equal(t, 0, registry.ConnectionsForRole("employee"))

	// Channel closes on cleanup so the stream loop exits
	_, open := <-conn.Events()
	assert.False(t, open)
}

func TestMultipleConnectionsPerUser(t *testing.T) {
	registry := NewRegistry(4)

	_, cleanup1 := registry.Register("user-1", "employee")
	_, cleanup2 := registry.Register("user-1", "employee")
	assert.Equal(t, 2, registry.ConnectionsFor("user-1"))

	cleanup1()
	assert.True(t, registry.IsOnline("user-1"), "second connection keeps the user online")

	cleanup2()
	assert.False(t, registry.IsOnline("user-1"))
}

func TestEmitToUserReachesEveryConnection(t *testing.T) {
	registry := NewRegistry(4)
	emitter := NewEmitter(registry)

	conn1, cleanup1 := registry.Register("user-1", "employee")
	defer cleanup1()
	conn2, cleanup2 := registry.Register("user-1", "employee")
	defer cleanup2()
	other, cleanupOther := registry.Register("user-2", "employee")
	defer cleanupOther()

	emitter.EmitToUser("user-1", EventNotificationNew, "hello")

	for _, conn := range []*Conn{conn1, conn2} {
		ev := <-conn.Events()
		assert.Equal(t, EventNotificationNew, ev.Name)
		assert.Equal(t, "hello", ev.Payload)
	}
	assert.Empty(t, other.ch, "other users receive nothing")
}

func TestEmitToUserPreservesOrder(t *testing.T) {
	registry := NewRegistry(8)
	emitter := NewEmitter(registry)

	conn, cleanup := registry.Register("user-1", "employee")
	defer cleanup()

	for i := 0; i < 5; i++ {
		emitter.EmitToUser("user-1", EventNotificationNew, i)
	}

	for i := 0; i < 5; i++ {
		ev := <-conn.Events()
		assert.Equal(t, i, ev.Payload)
	}
}

func TestEmitToRoles(t *testing.T) {
	registry := NewRegistry(4)
	emitter := NewEmitter(registry)

	hrConn, cleanupHR := registry.Register("hr-1", "hr")
	defer cleanupHR()
	adminConn, cleanupAdmin := registry.Register("admin-1", "admin")
	defer cleanupAdmin()
	empConn, cleanupEmp := registry.Register("emp-1", "employee")
	defer cleanupEmp()

	emitter.EmitToRoles([]string{"admin", "hr"}, EventLeaveNew, "request")

	for _, conn := range []*Conn{hrConn, adminConn} {
		ev := <-conn.Events()
		assert.Equal(t, EventLeaveNew, ev.Name)
	}
	assert.Empty(t, empConn.ch, "employee role is not a reviewer")
}

func TestEmitToAllExcept(t *testing.T) {
	registry := NewRegistry(4)
	emitter := NewEmitter(registry)

	sender, cleanupSender := registry.Register("user-1", "employee")
	defer cleanupSender()
	receiver, cleanupReceiver := registry.Register("user-2", "employee")
	defer cleanupReceiver()

	emitter.EmitToAllExcept("user-1", EventUserTyping, nil)

	ev := <-receiver.Events()
	assert.Equal(t, EventUserTyping, ev.Name)
	assert.Empty(t, sender.ch, "sender does not receive their own indicator")
}

func TestEmitToOfflineUserIsNoOp(t *testing.T) {
	registry := NewRegistry(4)
	emitter := NewEmitter(registry)

	// Must not panic or block
	emitter.EmitToUser("nobody", EventNotificationNew, "hello")
	emitter.EmitToRoles([]string{"hr"}, EventLeaveNew, "request")
	emitter.EmitToAll(EventPing, nil)
}

func TestFullBufferDropsInsteadOfBlocking(t *testing.T) {
	registry := NewRegistry(2)
	emitter := NewEmitter(registry)

	conn, cleanup := registry.Register("user-1", "employee")
	defer cleanup()

	for i := 0; i < 5; i++ {
		emitter.EmitToUser("user-1", EventNotificationNew, i)
	}

	// Only the first two fit; the rest were dropped silently
	assert.Len(t, conn.ch, 2)
	first := <-conn.Events()
	assert.Equal(t, 0, first.Payload)
}
