package dto

// Response DTOs

type DoctorResponse struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Specialties          []string `json:"specialties"`
	ExperienceYears      int      `json:"experience_years"`
	Fee                  float64  `json:"fee"`
	SupportsClinicVisit  bool     `json:"supports_clinic_visit"`
	SupportsVideoConsult bool     `json:"supports_video_consult"`
	AvatarURL            string   `json:"avatar_url,omitempty"`
}

type SuggestionResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type SuggestionListResponse struct {
	Query       string               `json:"query"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}
