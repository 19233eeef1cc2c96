package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxHistoryEntries bounds a NavigationHistory. Pushing beyond it drops the oldest entry.
const MaxHistoryEntries = 50

// NavigationEntry is one navigation history record: a location plus the state
// that produced it. State is nil for entries that were not pushed by a filter
// change, such as the landing location.
type NavigationEntry struct {
	Location string       `json:"location"`
	State    *FilterState `json:"state,omitempty"`
}

// NavigationHistory is a navigation stack with a cursor, like a browser tab's history.
// Create one with NewNavigationHistory.
type NavigationHistory struct {
	Entries []NavigationEntry `json:"entries"`
	Index   int               `json:"index"`
}

// NewNavigationHistory starts a history at the given landing location.
func NewNavigationHistory(location string) NavigationHistory {
	return NavigationHistory{
		Entries: []NavigationEntry{{Location: location}},
	}
}

// Current returns the entry under the cursor.
func (h *NavigationHistory) Current() NavigationEntry {
	return h.Entries[h.Index]
}

// Push records a new entry after the cursor. Entries ahead of the cursor are discarded.
func (h *NavigationHistory) Push(e NavigationEntry) {
	h.Entries = append(h.Entries[:h.Index+1], e)
	if len(h.Entries) > MaxHistoryEntries {
		h.Entries = h.Entries[len(h.Entries)-MaxHistoryEntries:]
	}
	h.Index = len(h.Entries) - 1
}

func (h *NavigationHistory) CanGoBack() bool {
	return h.Index > 0
}

func (h *NavigationHistory) CanGoForward() bool {
	return h.Index < len(h.Entries)-1
}

// Back moves the cursor one entry back. It reports false at the first entry.
func (h *NavigationHistory) Back() (NavigationEntry, bool) {
	if !h.CanGoBack() {
		return NavigationEntry{}, false
	}
	h.Index--
	return h.Current(), true
}

// Forward moves the cursor one entry forward. It reports false at the last entry.
func (h *NavigationHistory) Forward() (NavigationEntry, bool) {
	if !h.CanGoForward() {
		return NavigationEntry{}, false
	}
	h.Index++
	return h.Current(), true
}

// BrowseSession is the navigation state of one user: the current filter
// state and the history of locations it went through.
type BrowseSession struct {
	ID        uuid.UUID         `json:"id"`
	Path      string            `json:"path"`
	State     FilterState       `json:"state"`
	History   NavigationHistory `json:"history"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
