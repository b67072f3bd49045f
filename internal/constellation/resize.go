package constellation

import "time"

// ResizeReactor collapses bursts of resize notifications into one reaction,
// fired once the notifications have been quiet for the debounce window.
// It is polled from the frame loop so it never runs concurrently with it.
type ResizeReactor struct {
	window   time.Duration
	deadline time.Time
	pending  bool
}

func NewResizeReactor(window time.Duration) *ResizeReactor {
	return &ResizeReactor{window: window}
}

// Notify records a resize at now and pushes the reaction back.
func (r *ResizeReactor) Notify(now time.Time) {
	r.pending = true
	r.deadline = now.Add(r.window)
}

// Due reports, at most once per burst, that the window has elapsed.
func (r *ResizeReactor) Due(now time.Time) bool {
	if !r.pending || now.Before(r.deadline) {
		return false
	}
	r.pending = false
	return true
}

func (r *ResizeReactor) Pending() bool {
	return r.pending
}

// Cancel drops a pending reaction.
func (r *ResizeReactor) Cancel() {
	r.pending = false
}
