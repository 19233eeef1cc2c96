package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"github.com/shopspring/decimal"
)

const (
	// DefaultSourceTimeout bounds one fetch of the remote user list.
	DefaultSourceTimeout = 10 * time.Second

	// GeneralSpecialty is appended to every doctor built from a remote user.
	GeneralSpecialty = "General Medicine"

	avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg"
)

// remoteUser is the subset of a JSONPlaceholder user the source reads.
type remoteUser struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Company  struct {
		Name string `json:"name"`
	} `json:"company"`
}

// APIDoctorSource builds doctor records from a remote list of users.
// The company name becomes the first specialty and the bookable attributes
// are drawn at random, so the result is placeholder data.
type APIDoctorSource struct {
	client *http.Client
	url    string

	mu  sync.Mutex
	rnd *rand.Rand
}

var _ domainRepo.DoctorSource = (*APIDoctorSource)(nil)

type APIDoctorSourceOption func(*APIDoctorSource)

func WithSourceTimeout(d time.Duration) APIDoctorSourceOption {
	return func(s *APIDoctorSource) {
		s.client.Timeout = d
	}
}

// WithRandSource fixes the random source, mainly for tests.
func WithRandSource(src rand.Source) APIDoctorSourceOption {
	return func(s *APIDoctorSource) {
		s.rnd = rand.New(src)
	}
}

func NewAPIDoctorSource(sourceURL string, opts ...APIDoctorSourceOption) *APIDoctorSource {
	s := &APIDoctorSource{
		client: &http.Client{Timeout: DefaultSourceTimeout},
		url:    sourceURL,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *APIDoctorSource) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch doctors: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("API call failed with status: %d", resp.StatusCode)
	}

	var users []remoteUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doctors := make([]entity.Doctor, len(users))
	for i, user := range users {
		doctors[i] = s.toDoctor(user)
	}
	return doctors, nil
}

func (s *APIDoctorSource) toDoctor(user remoteUser) entity.Doctor {
	specialties := []string{GeneralSpecialty}
	if user.Company.Name != "" {
		specialties = []string{user.Company.Name, GeneralSpecialty}
	}

	return entity.Doctor{
		ID:                   user.ID,
		Name:                 user.Name,
		Username:             user.Username,
		Specialties:          entity.NewDoctorSpecialties(specialties...),
		ExperienceYears:      s.rnd.Intn(20) + 5,
		Fee:                  decimal.NewFromInt(int64(s.rnd.Intn(1000) + 500)),
		SupportsClinicVisit:  true,
		SupportsVideoConsult: s.rnd.Float64() > 0.3,
		AvatarURL:            avatarBaseURL + "?seed=" + url.QueryEscape(user.Username),
	}
}
