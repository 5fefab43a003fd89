package testutil

import "sync"

// RecordingNotifier captures every notification for assertions. Confirm
// answers delete confirmations; it defaults to true.
type RecordingNotifier struct {
	mu sync.Mutex

	Successes []string
	Errors    []string
	Warnings  []string
	Infos     []string

	Confirm      bool
	LoadingCalls int
}

// NewRecordingNotifier returns a notifier that confirms deletes.
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{Confirm: true}
}

func (n *RecordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Successes = append(n.Successes, msg)
}

func (n *RecordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Errors = append(n.Errors, msg)
}

func (n *RecordingNotifier) Warning(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Warnings = append(n.Warnings, msg)
}

func (n *RecordingNotifier) Info(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Infos = append(n.Infos, msg)
}

func (n *RecordingNotifier) ConfirmDelete() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.Confirm
}

func (n *RecordingNotifier) Loading(label string) func() {
	n.mu.Lock()
	n.LoadingCalls++
	n.mu.Unlock()
	return func() {}
}

// SuccessCount returns the number of success notifications so far.
func (n *RecordingNotifier) SuccessCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Successes)
}

// WarningCount returns the number of warning notifications so far.
func (n *RecordingNotifier) WarningCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Warnings)
}
