package usecase_test

import (
	"context"
	"testing"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoadedDirectory(t *testing.T) usecase.DirectoryUsecase {
	t.Helper()

	directory := usecase.NewDirectoryUsecase(newTestLogger(), &fakeSource{doctors: testDoctors()}, "/doctors", 0)
	require.NoError(t, directory.Load(context.Background()))
	return directory
}

func TestDirectoryUsecase_Load(t *testing.T) {
	t.Parallel()

	t.Run("reads before load report not loaded", func(t *testing.T) {
		t.Parallel()

		directory := usecase.NewDirectoryUsecase(newTestLogger(), &fakeSource{doctors: testDoctors()}, "", 3)

		_, err := directory.Browse(context.Background(), entity.FilterState{})
		assert.ErrorIs(t, err, usecase.ErrDirectoryNotLoaded)
	})

	t.Run("reads during load report not loaded", func(t *testing.T) {
		t.Parallel()

		source := newBlockingSource(testDoctors())
		directory := usecase.NewDirectoryUsecase(newTestLogger(), source, "", 3)

		loaded := make(chan error, 1)
		go func() {
			loaded <- directory.Load(context.Background())
		}()
		<-source.started

		_, err := directory.Browse(context.Background(), entity.FilterState{})
		assert.ErrorIs(t, err, usecase.ErrDirectoryNotLoaded)
		_, err = directory.Suggest(context.Background(), "ali")
		assert.ErrorIs(t, err, usecase.ErrDirectoryNotLoaded)

		close(source.release)
		require.NoError(t, <-loaded)

		resp, err := directory.Browse(context.Background(), entity.FilterState{})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.Total)
	})

	t.Run("concurrent loads share one fetch", func(t *testing.T) {
		t.Parallel()

		source := newBlockingSource(testDoctors())
		directory := usecase.NewDirectoryUsecase(newTestLogger(), source, "", 3)

		loaded := make(chan error, 2)
		for i := 0; i < 2; i++ {
			go func() {
				loaded <- directory.Load(context.Background())
			}()
		}
		<-source.started
		close(source.release)

		require.NoError(t, <-loaded)
		require.NoError(t, <-loaded)
	})

	t.Run("loads once", func(t *testing.T) {
		t.Parallel()

		source := &fakeSource{doctors: testDoctors()}
		directory := usecase.NewDirectoryUsecase(newTestLogger(), source, "", 3)

		require.NoError(t, directory.Load(context.Background()))
		require.NoError(t, directory.Load(context.Background()))
		assert.Equal(t, 1, source.calls)
	})

	t.Run("failure is terminal", func(t *testing.T) {
		t.Parallel()

		source := &fakeSource{err: errBoom}
		directory := usecase.NewDirectoryUsecase(newTestLogger(), source, "", 3)

		assert.ErrorIs(t, directory.Load(context.Background()), usecase.ErrLoadFailed)

		source.err = nil
		source.doctors = testDoctors()
		assert.ErrorIs(t, directory.Load(context.Background()), usecase.ErrLoadFailed)
		assert.Equal(t, 1, source.calls)

		_, err := directory.Specialties(context.Background())
		assert.ErrorIs(t, err, usecase.ErrLoadFailed)
	})
}

func TestDirectoryUsecase_Browse(t *testing.T) {
	t.Parallel()

	directory := newLoadedDirectory(t)

	t.Run("empty state shows everything in source order", func(t *testing.T) {
		t.Parallel()

		resp, err := directory.Browse(context.Background(), entity.FilterState{})
		require.NoError(t, err)

		assert.Equal(t, 4, resp.Total)
		assert.Equal(t, "/doctors", resp.Location)
		assert.Equal(t, "", resp.Query)
		assert.Empty(t, resp.AppliedFilters)
		assert.Equal(t, []string{"Cardiology", "Dermatology", "General Medicine", "Neurology"}, resp.Specialties)
	})

	t.Run("filters then sorts", func(t *testing.T) {
		t.Parallel()

		state := entity.FilterState{
			ConsultationMode:    entity.ConsultationModeVideo,
			SelectedSpecialties: []string{"Cardiology"},
			SortKey:             entity.SortKeyFeeAsc,
		}

		resp, err := directory.Browse(context.Background(), state)
		require.NoError(t, err)

		require.Len(t, resp.Doctors, 2)
		assert.Equal(t, "Alice", resp.Doctors[0].Name)
		assert.Equal(t, "Alina", resp.Doctors[1].Name)
		assert.Equal(t, "consultationType=video&specialty=Cardiology&sortBy=fees", resp.Query)
		assert.Equal(t, "/doctors?consultationType=video&specialty=Cardiology&sortBy=fees", resp.Location)
		assert.Equal(t, []string{"Video Consult", "Cardiology", "Sort: Fees (Low to High)"}, resp.AppliedFilters)
	})
}

func TestDirectoryUsecase_Suggest(t *testing.T) {
	t.Parallel()

	directory := newLoadedDirectory(t)

	resp, err := directory.Suggest(context.Background(), "ali")
	require.NoError(t, err)

	var names []string
	for _, s := range resp.Suggestions {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Alice", "Alina", "Malik"}, names)

	resp, err = directory.Suggest(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, resp.Suggestions)
}

func TestDirectoryUsecase_GetDoctor(t *testing.T) {
	t.Parallel()

	directory := newLoadedDirectory(t)

	doctor, err := directory.GetDoctor(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Bob", doctor.Name)
	assert.Equal(t, 300.0, doctor.Fee)

	_, err = directory.GetDoctor(context.Background(), 99)
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
}
