package booking

import (
	"fmt"

	doctorRepo "medigo/database/repository/doctor"
	"medigo/models"
)

// maxDoctors caps how many candidates a lookup returns.
const maxDoctors = 5

// DefaultMatchingService implements MatchingService against the doctor store.
type DefaultMatchingService struct {
	Repo doctorRepo.DoctorRepository
}

// TopDoctors returns up to maxDoctors active doctors for the
// specialization, best rated first. An empty roster is not an error.
func (s *DefaultMatchingService) TopDoctors(specialization string) ([]models.Doctor, error) {
	doctors, err := s.Repo.FindBySpecialization(specialization, maxDoctors)
	if err != nil {
		return nil, NewLookupError(fmt.Sprintf("fetching doctors for %s: %v", specialization, err))
	}
	return doctors, nil
}
