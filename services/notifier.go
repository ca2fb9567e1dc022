package services

// Notifier is the push side channel observers listen on. Implementations
// broadcast unparameterized "something changed" events; delivery is
// best-effort and carries no acknowledgment. Production wiring binds it to
// the websocket hub, tests bind a recording stub.
type Notifier interface {
	OrdersChanged()
	TablesChanged()
	MenusChanged()
}

// NoopNotifier satisfies Notifier without observers.
type NoopNotifier struct{}

func (NoopNotifier) OrdersChanged() {}
func (NoopNotifier) TablesChanged() {}
func (NoopNotifier) MenusChanged() {}
