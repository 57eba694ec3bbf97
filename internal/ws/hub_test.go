package ws

import (
	"testing"

	"go.uber.org/zap"
)

func TestNotifyWithoutClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	if n := hub.ClientCount(); n != 0 {
		t.Fatalf("ClientCount = %d, want 0", n)
	}
	// Broadcasting into an empty hub must be a no-op.
	hub.Notify("reports:created", map[string]string{"id": "x"})
}
