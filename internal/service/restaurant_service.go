package service

import (
	"strings"

	"github.com/yallaorder-next/internal/models"
	"github.com/yallaorder-next/internal/repository"
)

// RestaurantService serves the customer-facing restaurant directory. Only
// approved partners appear, and only their public profile fields.
type RestaurantService struct {
	partners repository.PartnerRepository
}

// NewRestaurantService creates the restaurant directory service.
func NewRestaurantService(partners repository.PartnerRepository) *RestaurantService {
	return &RestaurantService{partners: partners}
}

// List returns all approved restaurants, alphabetically.
func (s *RestaurantService) List() ([]models.PublicProfile, error) {
	apps, err := s.partners.ListApproved()
	if err != nil {
		return nil, err
	}
	return toProfiles(apps), nil
}

// Search returns approved restaurants whose name contains the query,
// case-insensitively. The query must not be blank.
func (s *RestaurantService) Search(query string) ([]models.PublicProfile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrMissingFields
	}
	apps, err := s.partners.SearchApproved(query)
	if err != nil {
		return nil, err
	}
	return toProfiles(apps), nil
}

// Get returns one approved restaurant's public profile.
func (s *RestaurantService) Get(id uint) (*models.PublicProfile, error) {
	app, err := s.partners.GetApprovedByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrRestaurantNotFound
	}
	profile := app.PublicProfile()
	return &profile, nil
}

func toProfiles(apps []models.PartnerApplication) []models.PublicProfile {
	profiles := make([]models.PublicProfile, 0, len(apps))
	for _, app := range apps {
		profiles = append(profiles, app.PublicProfile())
	}
	return profiles
}
