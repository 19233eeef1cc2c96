package filter

import (
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// DefaultSuggestionLimit is the number of suggestions returned when no limit is configured.
const DefaultSuggestionLimit = 3

// Suggest returns up to limit doctors whose name contains query, case-insensitively.
//
// Suggestions are the first matches in source order; there is no relevance
// ranking. A blank query yields no suggestions. A limit below one falls back to
// DefaultSuggestionLimit.
func Suggest(doctors []entity.Doctor, query string, limit int) []entity.Doctor {
	if limit < 1 {
		limit = DefaultSuggestionLimit
	}

	suggestions := []entity.Doctor{}
	if strings.TrimSpace(query) == "" {
		return suggestions
	}

	needle := strings.ToLower(query)
	for _, doctor := range doctors {
		if len(suggestions) == limit {
			break
		}
		if strings.Contains(strings.ToLower(doctor.Name), needle) {
			suggestions = append(suggestions, doctor)
		}
	}
	return suggestions
}
