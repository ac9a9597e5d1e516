package tui

import "log"

// alertQueue holds alerts raised by page handlers until the user dismisses
// them. Alerts block input the way a browser alert does.
type alertQueue struct {
	items []string
}

func newAlertQueue() *alertQueue { return &alertQueue{} }

// Push queues msg. It is the session's Alerter.
func (q *alertQueue) Push(msg string) {
	log.Printf("[tui] alert: %s", msg)
	q.items = append(q.items, msg)
}

// Len returns the number of undismissed alerts.
func (q *alertQueue) Len() int { return len(q.items) }

// Front returns the oldest alert.
func (q *alertQueue) Front() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	return q.items[0], true
}

// Dismiss drops the oldest alert.
func (q *alertQueue) Dismiss() {
	if len(q.items) > 0 {
		q.items = q.items[1:]
	}
}

// Clear drops everything.
func (q *alertQueue) Clear() { q.items = nil }
