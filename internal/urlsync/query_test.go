package urlsync_test

import (
	"net/url"
	"strings"
	"testing"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/urlsync"

	"github.com/stretchr/testify/assert"
)

func TestDecodeQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  entity.FilterState
	}{
		{
			name:  "search and sort",
			query: "?search=ali&sortBy=fees",
			want:  entity.FilterState{SearchQuery: "ali", SortKey: entity.SortKeyFeeAsc},
		},
		{
			name:  "missing parameters decode to empty state",
			query: "",
			want:  entity.FilterState{},
		},
		{
			name:  "repeated specialties keep order",
			query: "specialty=Neurology&specialty=Cardiology",
			want:  entity.FilterState{SelectedSpecialties: []string{"Neurology", "Cardiology"}},
		},
		{
			name:  "duplicate specialties are dropped",
			query: "specialty=Neurology&specialty=Neurology&specialty=Cardiology",
			want:  entity.FilterState{SelectedSpecialties: []string{"Neurology", "Cardiology"}},
		},
		{
			name:  "empty specialty is kept once",
			query: "specialty=&specialty=Neurology&specialty=",
			want:  entity.FilterState{SelectedSpecialties: []string{"", "Neurology"}},
		},
		{
			name:  "unknown enum values decode to none",
			query: "consultationType=phone&sortBy=rating",
			want:  entity.FilterState{},
		},
		{
			name:  "consultation modes",
			query: "consultationType=clinic&sortBy=experience",
			want:  entity.FilterState{ConsultationMode: entity.ConsultationModeClinic, SortKey: entity.SortKeyExperienceDesc},
		},
		{
			name:  "repeated scalar takes first value",
			query: "search=first&search=second",
			want:  entity.FilterState{SearchQuery: "first"},
		},
		{
			name:  "plus and percent escapes",
			query: "search=dr+ali%26co&specialty=General+Medicine",
			want:  entity.FilterState{SearchQuery: "dr ali&co", SelectedSpecialties: []string{"General Medicine"}},
		},
		{
			name:  "malformed pairs are skipped",
			query: "search=%zz&sortBy=fees",
			want:  entity.FilterState{SortKey: entity.SortKeyFeeAsc},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, urlsync.DecodeQuery(tt.query))
		})
	}
}

func TestDecodeLocation(t *testing.T) {
	t.Parallel()

	got := urlsync.DecodeLocation("/doctors?consultationType=video&specialty=Dermatology")

	assert.Equal(t, entity.FilterState{
		ConsultationMode:    entity.ConsultationModeVideo,
		SelectedSpecialties: []string{"Dermatology"},
	}, got)
	assert.Equal(t, entity.FilterState{}, urlsync.DecodeLocation("/doctors"))
}

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("empty state encodes to nothing", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", urlsync.Encode(entity.FilterState{}))
		assert.Equal(t, "/", urlsync.Location("/", entity.FilterState{}))
	})

	t.Run("fixed parameter order", func(t *testing.T) {
		t.Parallel()

		state := entity.FilterState{
			SearchQuery:         "ali",
			ConsultationMode:    entity.ConsultationModeVideo,
			SelectedSpecialties: []string{"Cardiology", "Neurology"},
			SortKey:             entity.SortKeyExperienceDesc,
		}

		assert.Equal(t,
			"search=ali&consultationType=video&specialty=Cardiology&specialty=Neurology&sortBy=experience",
			urlsync.Encode(state))
	})

	t.Run("two specialties encode to exactly two parameters in order", func(t *testing.T) {
		t.Parallel()

		query := urlsync.Encode(entity.FilterState{SelectedSpecialties: []string{"Cardiology", "Neurology"}})

		assert.Equal(t, 2, strings.Count(query, "specialty="))
		assert.Less(t, strings.Index(query, "Cardiology"), strings.Index(query, "Neurology"))
	})

	t.Run("form escaping", func(t *testing.T) {
		t.Parallel()

		query := urlsync.Encode(entity.FilterState{
			SearchQuery:         "dr ali & co*~",
			SelectedSpecialties: []string{"Ear/Nose"},
		})

		assert.Equal(t, "search=dr+ali+%26+co*%7E&specialty=Ear%2FNose", query)
	})

	t.Run("location joins path and query", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/doctors?sortBy=fees", urlsync.Location("/doctors", entity.FilterState{SortKey: entity.SortKeyFeeAsc}))
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	states := []entity.FilterState{
		{},
		{SearchQuery: "ali"},
		{SearchQuery: "  spaced  out  "},
		{ConsultationMode: entity.ConsultationModeClinic},
		{SelectedSpecialties: []string{"Cardiology", "Neurology", "Ear, Nose & Throat"}},
		{SortKey: entity.SortKeyFeeAsc},
		{SelectedSpecialties: []string{""}},
		{SelectedSpecialties: []string{"Cardiology", ""}},
		{
			SearchQuery:         "Zoë + Ann",
			ConsultationMode:    entity.ConsultationModeVideo,
			SelectedSpecialties: []string{"General Medicine"},
			SortKey:             entity.SortKeyExperienceDesc,
		},
	}

	for _, state := range states {
		assert.Equal(t, state, urlsync.DecodeQuery(urlsync.Encode(state)))

		values, err := url.ParseQuery(urlsync.Encode(state))
		assert.NoError(t, err)
		assert.Equal(t, state, urlsync.Decode(values))
	}
}
