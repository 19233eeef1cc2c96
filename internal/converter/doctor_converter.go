package converter

import (
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                   doctor.ID,
		Name:                 doctor.Name,
		Specialties:          doctor.SpecialtyNames(),
		ExperienceYears:      doctor.ExperienceYears,
		Fee:                  doctor.Fee.InexactFloat64(),
		SupportsClinicVisit:  doctor.SupportsClinicVisit,
		SupportsVideoConsult: doctor.SupportsVideoConsult,
		AvatarURL:            doctor.AvatarURL,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorsToSuggestions converts doctors to the short form used by live search
func DoctorsToSuggestions(doctors []entity.Doctor) []dto.SuggestionResponse {
	suggestions := make([]dto.SuggestionResponse, len(doctors))
	for i, doctor := range doctors {
		suggestions[i] = dto.SuggestionResponse{
			ID:        doctor.ID,
			Name:      doctor.Name,
			AvatarURL: doctor.AvatarURL,
		}
	}
	return suggestions
}
