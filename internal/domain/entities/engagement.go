package entities

import "time"

// Engagement accumulates open/click interactions on a delivery.
// The invariants live here and nowhere else:
//   - counters only grow
//   - first timestamps are set once and never overwritten
//   - last timestamps always take the newest accepted event
//   - the last clicked link wins
type Engagement struct {
	OpenCount      int        `json:"open_count"`
	ClickCount     int        `json:"click_count"`
	FirstOpenedAt  *time.Time `json:"first_opened_at,omitempty"`
	LastOpenedAt   *time.Time `json:"last_opened_at,omitempty"`
	FirstClickedAt *time.Time `json:"first_clicked_at,omitempty"`
	LastClickedAt  *time.Time `json:"last_clicked_at,omitempty"`
	LastLink       string     `json:"last_link,omitempty"`
}

// ApplyOpen records one open at the given event time.
func (e *Engagement) ApplyOpen(at time.Time) {
	e.OpenCount++
	if e.FirstOpenedAt == nil {
		first := at
		e.FirstOpenedAt = &first
	}
	last := at
	e.LastOpenedAt = &last
}

// ApplyClick records one click at the given event time.
func (e *Engagement) ApplyClick(at time.Time, link string) {
	e.ClickCount++
	if e.FirstClickedAt == nil {
		first := at
		e.FirstClickedAt = &first
	}
	last := at
	e.LastClickedAt = &last
	if link != "" {
		e.LastLink = link
	}
}
