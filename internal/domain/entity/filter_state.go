package entity

// ConsultationMode restricts results to doctors offering a given kind of consultation.
// The zero value means no constraint.
type ConsultationMode string

const (
	ConsultationModeNone   ConsultationMode = ""
	ConsultationModeVideo  ConsultationMode = "video"
	ConsultationModeClinic ConsultationMode = "clinic"
)

// ParseConsultationMode maps a wire value to a mode. Unknown values map to ConsultationModeNone.
func ParseConsultationMode(s string) ConsultationMode {
	switch ConsultationMode(s) {
	case ConsultationModeVideo, ConsultationModeClinic:
		return ConsultationMode(s)
	default:
		return ConsultationModeNone
	}
}

// Label returns the human readable name shown in the applied filter summary.
func (m ConsultationMode) Label() string {
	switch m {
	case ConsultationModeVideo:
		return "Video Consult"
	case ConsultationModeClinic:
		return "In Clinic"
	default:
		return ""
	}
}

// SortKey selects the ordering of the visible list. The zero value keeps source order.
type SortKey string

const (
	SortKeyNone           SortKey = ""
	SortKeyFeeAsc         SortKey = "fees"
	SortKeyExperienceDesc SortKey = "experience"
)

// ParseSortKey maps a wire value to a sort key. Unknown values map to SortKeyNone.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortKeyFeeAsc, SortKeyExperienceDesc:
		return SortKey(s)
	default:
		return SortKeyNone
	}
}

func (k SortKey) Label() string {
	switch k {
	case SortKeyFeeAsc:
		return "Fees (Low to High)"
	case SortKeyExperienceDesc:
		return "Experience (High to Low)"
	default:
		return ""
	}
}

// FilterState is the complete search, filter and sort intent of one user.
//
// A FilterState is treated as an immutable value: every change produces a new
// state through Apply, ToggleSpecialty or Clear, and the receiver is never modified.
type FilterState struct {
	SearchQuery         string           `json:"searchQuery"`
	ConsultationMode    ConsultationMode `json:"consultationType"`
	SelectedSpecialties []string         `json:"selectedSpecialties"`
	SortKey             SortKey          `json:"sortBy"`
}

// FilterUpdate is a partial FilterState. Nil fields keep the current value.
// A non-nil SelectedSpecialties replaces the selection, so an empty non-nil
// slice clears it. An empty selection is stored as nil and repeated names
// keep only their first occurrence.
type FilterUpdate struct {
	SearchQuery         *string
	ConsultationMode    *ConsultationMode
	SelectedSpecialties []string
	SortKey             *SortKey
}

// IsEmpty reports whether no field constrains the result.
func (s FilterState) IsEmpty() bool {
	return s.SearchQuery == "" &&
		s.ConsultationMode == ConsultationModeNone &&
		len(s.SelectedSpecialties) == 0 &&
		s.SortKey == SortKeyNone
}

func (s FilterState) HasSpecialty(name string) bool {
	for _, selected := range s.SelectedSpecialties {
		if selected == name {
			return true
		}
	}
	return false
}

// Apply merges the update into a copy of s.
func (s FilterState) Apply(update FilterUpdate) FilterState {
	next := s.clone()
	if update.SearchQuery != nil {
		next.SearchQuery = *update.SearchQuery
	}
	if update.ConsultationMode != nil {
		next.ConsultationMode = *update.ConsultationMode
	}
	if update.SelectedSpecialties != nil {
		next.SelectedSpecialties = uniqueSpecialties(update.SelectedSpecialties)
	}
	if update.SortKey != nil {
		next.SortKey = *update.SortKey
	}
	return next
}

// ToggleSpecialty adds name to the selection, or removes it when already selected.
// Newly selected specialties go to the end of the selection.
func (s FilterState) ToggleSpecialty(name string) FilterState {
	next := s.clone()
	for i, selected := range next.SelectedSpecialties {
		if selected == name {
			next.SelectedSpecialties = copySpecialties(append(next.SelectedSpecialties[:i], next.SelectedSpecialties[i+1:]...))
			return next
		}
	}
	next.SelectedSpecialties = append(next.SelectedSpecialties, name)
	return next
}

// Clear returns the state with no constraint at all.
func (s FilterState) Clear() FilterState {
	return FilterState{}
}

// Labels lists the applied filters in display order.
func (s FilterState) Labels() []string {
	labels := []string{}
	if s.SearchQuery != "" {
		labels = append(labels, s.SearchQuery)
	}
	if s.ConsultationMode != ConsultationModeNone {
		labels = append(labels, s.ConsultationMode.Label())
	}
	labels = append(labels, s.SelectedSpecialties...)
	if s.SortKey != SortKeyNone {
		labels = append(labels, "Sort: "+s.SortKey.Label())
	}
	return labels
}

func (s FilterState) clone() FilterState {
	next := s
	next.SelectedSpecialties = copySpecialties(s.SelectedSpecialties)
	return next
}

// copySpecialties copies a selection. An empty selection is always nil so that
// states compare equal however they were produced.
func copySpecialties(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	return append([]string(nil), names...)
}

// uniqueSpecialties copies a selection without repeated names, keeping the
// first occurrence of each.
func uniqueSpecialties(names []string) []string {
	var unique []string
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}
