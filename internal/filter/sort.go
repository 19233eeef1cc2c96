package filter

import (
	"sort"

	"go-doctor-directory/internal/domain/entity"
)

// Sort returns a reordered copy of doctors.
//
// SortKeyFeeAsc orders by ascending fee and SortKeyExperienceDesc by descending
// experience. Both are stable, so ties keep their input order. Any other key
// returns the input order unchanged.
func Sort(doctors []entity.Doctor, key entity.SortKey) []entity.Doctor {
	sorted := make([]entity.Doctor, len(doctors))
	copy(sorted, doctors)

	switch key {
	case entity.SortKeyFeeAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Fee.LessThan(sorted[j].Fee)
		})
	case entity.SortKeyExperienceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ExperienceYears > sorted[j].ExperienceYears
		})
	}

	return sorted
}
