// Package console implements the back-office screens: login, the CRUD
// screens for buyers, products, users and orders, and the order
// composition wizard. Screens talk to the backend through the api client
// and surface every outcome through the Notifier.
package console

// Notifier is the notification surface. Screens never print directly;
// they report successes, failures, and warnings here, ask for delete
// confirmations, and hold a loading indicator across slow calls.
// Implementations must be safe for concurrent use.
type Notifier interface {
	Success(message string)
	Error(message string)
	Warning(message string)
	Info(message string)
	// ConfirmDelete returns the operator's decision for a destructive
	// action.
	ConfirmDelete() bool
	// Loading shows a loading indicator until the returned function is
	// called.
	Loading(label string) func()
}

// NopNotifier discards every notification and declines every
// confirmation.
type NopNotifier struct{}

func (NopNotifier) Success(string)        {}
func (NopNotifier) Error(string)          {}
func (NopNotifier) Warning(string)        {}
func (NopNotifier) Info(string)           {}
func (NopNotifier) ConfirmDelete() bool   { return false }
func (NopNotifier) Loading(string) func() { return func() {} }
