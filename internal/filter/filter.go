// Package filter computes what the directory shows: the filtered and sorted
// visible list, the specialty index and live search suggestions.
//
// Every function here is pure and leaves its input slices untouched.
package filter

import (
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// Filter returns the doctors matching every constraint of state, in input order.
//
// Name search is a case-insensitive substring match. Consultation mode requires
// the matching capability. Selected specialties match when the doctor has any
// one of them.
func Filter(doctors []entity.Doctor, state entity.FilterState) []entity.Doctor {
	query := strings.ToLower(state.SearchQuery)

	matched := make([]entity.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if query != "" && !strings.Contains(strings.ToLower(doctor.Name), query) {
			continue
		}
		if !supportsMode(doctor, state.ConsultationMode) {
			continue
		}
		if len(state.SelectedSpecialties) > 0 && !hasAnySpecialty(doctor, state) {
			continue
		}
		matched = append(matched, doctor)
	}
	return matched
}

// Visible is the list shown to the user: Filter followed by Sort.
func Visible(doctors []entity.Doctor, state entity.FilterState) []entity.Doctor {
	return Sort(Filter(doctors, state), state.SortKey)
}

func supportsMode(doctor entity.Doctor, mode entity.ConsultationMode) bool {
	switch mode {
	case entity.ConsultationModeVideo:
		return doctor.SupportsVideoConsult
	case entity.ConsultationModeClinic:
		return doctor.SupportsClinicVisit
	default:
		return true
	}
}

func hasAnySpecialty(doctor entity.Doctor, state entity.FilterState) bool {
	for _, specialty := range doctor.Specialties {
		if state.HasSpecialty(specialty.Name) {
			return true
		}
	}
	return false
}
