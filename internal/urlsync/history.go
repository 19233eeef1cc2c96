package urlsync

import "go-doctor-directory/internal/domain/entity"

// Snapshot encodes state under path and attaches a copy of it as the entry payload.
func Snapshot(path string, state entity.FilterState) entity.NavigationEntry {
	payload := state.Apply(entity.FilterUpdate{})
	return entity.NavigationEntry{
		Location: Location(path, state),
		State:    &payload,
	}
}

// Restore returns the state carried by e, falling back to decoding its location.
func Restore(e entity.NavigationEntry) entity.FilterState {
	if e.State != nil {
		return e.State.Apply(entity.FilterUpdate{})
	}
	return DecodeLocation(e.Location)
}

// Commit applies a user-driven state change: it pushes a snapshot of state
// onto the history and returns the new entry.
func Commit(h *entity.NavigationHistory, path string, state entity.FilterState) entity.NavigationEntry {
	entry := Snapshot(path, state)
	h.Push(entry)
	return entry
}
