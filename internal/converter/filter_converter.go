package converter

import (
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

// FilterStateToResponse converts a FilterState to its wire form. The
// specialty list is never null.
func FilterStateToResponse(state entity.FilterState) dto.FilterStateResponse {
	specialties := []string{}
	specialties = append(specialties, state.SelectedSpecialties...)

	return dto.FilterStateResponse{
		SearchQuery:         state.SearchQuery,
		ConsultationType:    string(state.ConsultationMode),
		SelectedSpecialties: specialties,
		SortBy:              string(state.SortKey),
	}
}

// FilterChangeRequestToUpdate converts a validated request into a partial state update
func FilterChangeRequestToUpdate(req *dto.FilterChangeRequest) entity.FilterUpdate {
	update := entity.FilterUpdate{
		SearchQuery:         req.SearchQuery,
		SelectedSpecialties: req.SelectedSpecialties,
	}
	if req.ConsultationType != nil {
		mode := entity.ParseConsultationMode(*req.ConsultationType)
		update.ConsultationMode = &mode
	}
	if req.SortBy != nil {
		key := entity.ParseSortKey(*req.SortBy)
		update.SortKey = &key
	}
	return update
}
