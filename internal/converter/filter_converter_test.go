package converter_test

import (
	"testing"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestFilterChangeRequestToUpdate(t *testing.T) {
	t.Parallel()

	t.Run("omitted fields stay nil", func(t *testing.T) {
		t.Parallel()

		update := converter.FilterChangeRequestToUpdate(&dto.FilterChangeRequest{})

		assert.Equal(t, entity.FilterUpdate{}, update)
	})

	t.Run("empty strings clear enums", func(t *testing.T) {
		t.Parallel()

		update := converter.FilterChangeRequestToUpdate(&dto.FilterChangeRequest{
			ConsultationType: strPtr(""),
			SortBy:           strPtr(""),
		})

		require.NotNil(t, update.ConsultationMode)
		require.NotNil(t, update.SortKey)
		assert.Equal(t, entity.ConsultationModeNone, *update.ConsultationMode)
		assert.Equal(t, entity.SortKeyNone, *update.SortKey)
	})

	t.Run("values are parsed", func(t *testing.T) {
		t.Parallel()

		update := converter.FilterChangeRequestToUpdate(&dto.FilterChangeRequest{
			SearchQuery:         strPtr("ali"),
			ConsultationType:    strPtr("video"),
			SelectedSpecialties: []string{"Cardiology"},
			SortBy:              strPtr("experience"),
		})

		state := entity.FilterState{}.Apply(update)
		assert.Equal(t, entity.FilterState{
			SearchQuery:         "ali",
			ConsultationMode:    entity.ConsultationModeVideo,
			SelectedSpecialties: []string{"Cardiology"},
			SortKey:             entity.SortKeyExperienceDesc,
		}, state)
	})
}

func TestFilterStateToResponse(t *testing.T) {
	t.Parallel()

	resp := converter.FilterStateToResponse(entity.FilterState{SortKey: entity.SortKeyFeeAsc})

	assert.Equal(t, "fees", resp.SortBy)
	assert.NotNil(t, resp.SelectedSpecialties)
	assert.Empty(t, resp.SelectedSpecialties)
}

func TestDoctorToResponse(t *testing.T) {
	t.Parallel()

	doctor := &entity.Doctor{
		ID:              7,
		Name:            "Alice",
		Fee:             decimal.RequireFromString("512.50"),
		ExperienceYears: 12,
		Specialties:     entity.NewDoctorSpecialties("Cardiology", "General Medicine"),
	}

	resp := converter.DoctorToResponse(doctor)

	require.NotNil(t, resp)
	assert.Equal(t, 512.5, resp.Fee)
	assert.Equal(t, []string{"Cardiology", "General Medicine"}, resp.Specialties)
	assert.Nil(t, converter.DoctorToResponse(nil))
}
