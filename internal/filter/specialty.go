package filter

import (
	"sort"

	"go-doctor-directory/internal/domain/entity"
)

// UniqueSpecialties returns every specialty label used by doctors, deduplicated
// and in ascending lexical order. The result is never nil.
func UniqueSpecialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	specialties := []string{}

	for _, doctor := range doctors {
		for _, specialty := range doctor.Specialties {
			if _, ok := seen[specialty.Name]; ok {
				continue
			}
			seen[specialty.Name] = struct{}{}
			specialties = append(specialties, specialty.Name)
		}
	}

	sort.Strings(specialties)
	return specialties
}
