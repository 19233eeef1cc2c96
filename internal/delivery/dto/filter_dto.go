package dto

// Request DTOs

// FilterChangeRequest is a partial filter update. Omitted fields keep their
// current value; an empty string or list clears the field.
type FilterChangeRequest struct {
	SearchQuery         *string  `json:"search_query" validate:"omitempty,max=100"`
	ConsultationType    *string  `json:"consultation_type" validate:"omitempty,oneof=video clinic ''"`
	SelectedSpecialties []string `json:"selected_specialties" validate:"omitempty,max=50,unique,dive,required,max=100"`
	SortBy              *string  `json:"sort_by" validate:"omitempty,oneof=fees experience ''"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"max=100"`
}

type ToggleSpecialtyRequest struct {
	Specialty string `json:"specialty" validate:"required,max=100"`
}

// Response DTOs

type FilterStateResponse struct {
	SearchQuery         string   `json:"search_query"`
	ConsultationType    string   `json:"consultation_type"`
	SelectedSpecialties []string `json:"selected_specialties"`
	SortBy              string   `json:"sort_by"`
}

// DirectoryResponse is one rendering of the directory for a filter state.
type DirectoryResponse struct {
	Doctors        []DoctorResponse    `json:"doctors"`
	Total          int                 `json:"total"`
	Filters        FilterStateResponse `json:"filters"`
	AppliedFilters []string            `json:"applied_filters"`
	Query          string              `json:"query"`
	Location       string              `json:"location"`
	Specialties    []string            `json:"specialties"`
}
