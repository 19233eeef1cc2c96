// Package urlsync maps a FilterState to and from the query string of a
// shareable location, and keeps the navigation history of those locations.
package urlsync

import (
	"net/url"
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// Query parameter names. They are part of every shared link and must not change.
const (
	ParamSearch           = "search"
	ParamConsultationType = "consultationType"
	ParamSpecialty        = "specialty"
	ParamSortBy           = "sortBy"
)

// Decode builds a FilterState from query parameters.
//
// Missing or unrecognised values decode to the empty value of their field.
// Repeated scalar parameters use their first value. Specialties keep their
// order and repeated names are dropped. An empty specialty is kept, so every
// encoded state decodes back to itself.
func Decode(values url.Values) entity.FilterState {
	state := entity.FilterState{
		SearchQuery:      values.Get(ParamSearch),
		ConsultationMode: entity.ParseConsultationMode(values.Get(ParamConsultationType)),
		SortKey:          entity.ParseSortKey(values.Get(ParamSortBy)),
	}

	for _, name := range values[ParamSpecialty] {
		if state.HasSpecialty(name) {
			continue
		}
		state.SelectedSpecialties = append(state.SelectedSpecialties, name)
	}

	return state
}

// DecodeQuery decodes a raw query string, with or without its leading '?'.
// Malformed pairs are skipped.
func DecodeQuery(rawQuery string) entity.FilterState {
	// ParseQuery keeps every valid pair even when it reports an error.
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	return Decode(values)
}

// DecodeLocation decodes the query part of a location such as "/doctors?search=ali".
func DecodeLocation(location string) entity.FilterState {
	u, err := url.Parse(location)
	if err != nil {
		if i := strings.IndexByte(location, '?'); i >= 0 {
			return DecodeQuery(location[i+1:])
		}
		return entity.FilterState{}
	}
	return DecodeQuery(u.RawQuery)
}

// Encode serialises state as a query string without the leading '?'.
//
// Parameters appear in a fixed order: search, consultationType, one specialty
// per selected name in selection order, then sortBy. Fields holding their
// empty value are omitted, so the empty state encodes to "".
func Encode(state entity.FilterState) string {
	var pairs []string

	if state.SearchQuery != "" {
		pairs = append(pairs, pair(ParamSearch, state.SearchQuery))
	}
	if state.ConsultationMode != entity.ConsultationModeNone {
		pairs = append(pairs, pair(ParamConsultationType, string(state.ConsultationMode)))
	}
	for _, name := range state.SelectedSpecialties {
		pairs = append(pairs, pair(ParamSpecialty, name))
	}
	if state.SortKey != entity.SortKeyNone {
		pairs = append(pairs, pair(ParamSortBy, string(state.SortKey)))
	}

	return strings.Join(pairs, "&")
}

// Location joins path and the encoded state into a shareable location.
func Location(path string, state entity.FilterState) string {
	query := Encode(state)
	if query == "" {
		return path
	}
	return path + "?" + query
}

func pair(key, value string) string {
	return formEscape(key) + "=" + formEscape(value)
}

// formEscape applies application/x-www-form-urlencoded escaping as browsers
// serialise URLSearchParams: '*' stays literal and '~' is escaped.
func formEscape(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "~", "%7E")
	return strings.ReplaceAll(escaped, "%2A", "*")
}
