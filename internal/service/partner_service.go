package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/yallaorder-next/internal/cache"
	"github.com/yallaorder-next/internal/config"
	"github.com/yallaorder-next/internal/constants"
	"github.com/yallaorder-next/internal/logger"
	"github.com/yallaorder-next/internal/models"
	"github.com/yallaorder-next/internal/repository"
)

const tempPasswordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ApplyInput carries a restaurant partner application.
type ApplyInput struct {
	ManagerName     string `json:"manager_name"`
	ManagerPhone    string `json:"manager_phone"`
	RestaurantName  string `json:"restaurant_name"`
	RestaurantPhone string `json:"restaurant_phone"`
	RestaurantEmail string `json:"restaurant_email"`
	Address         string `json:"address"`
	Hotline         string `json:"hotline"`
	HasLicense      bool   `json:"has_license"`
}

// ApplicationStatus is what an applicant sees when checking their
// application. The credential is included only once approved.
type ApplicationStatus struct {
	Status       string `json:"status"`
	TempPassword string `json:"temp_password,omitempty"`
}

// PartnerLoginResult is a successful partner login.
type PartnerLoginResult struct {
	Token   string                `json:"token"`
	Partner *models.PublicProfile `json:"partner"`
}

// PartnerService owns the partner application lifecycle and partner
// account operations.
type PartnerService struct {
	partners repository.PartnerRepository
	jwtCfg   config.JWTConfig
	cfg      config.PartnerConfig
}

// NewPartnerService creates the partner service.
func NewPartnerService(partners repository.PartnerRepository, jwtCfg config.JWTConfig, cfg config.PartnerConfig) *PartnerService {
	return &PartnerService{partners: partners, jwtCfg: jwtCfg, cfg: cfg}
}

// Apply files a new partner application. The email must not be used by any
// existing application, the hotline defaults when omitted, and the
// application starts pending.
func (s *PartnerService) Apply(in ApplyInput) (*models.PartnerApplication, error) {
	in.ManagerName = strings.TrimSpace(in.ManagerName)
	in.ManagerPhone = strings.TrimSpace(in.ManagerPhone)
	in.RestaurantName = strings.TrimSpace(in.RestaurantName)
	in.RestaurantPhone = strings.TrimSpace(in.RestaurantPhone)
	in.RestaurantEmail = strings.ToLower(strings.TrimSpace(in.RestaurantEmail))
	in.Address = strings.TrimSpace(in.Address)
	in.Hotline = strings.TrimSpace(in.Hotline)

	if in.ManagerName == "" || in.ManagerPhone == "" || in.RestaurantName == "" ||
		in.RestaurantPhone == "" || in.RestaurantEmail == "" || in.Address == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.partners.GetByEmail(in.RestaurantEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hotline := in.Hotline
	if hotline == "" {
		hotline = constants.DefaultHotline
	}

	app := &models.PartnerApplication{
		ManagerName:     in.ManagerName,
		ManagerPhone:    in.ManagerPhone,
		RestaurantName:  in.RestaurantName,
		RestaurantPhone: in.RestaurantPhone,
		RestaurantEmail: in.RestaurantEmail,
		Address:         in.Address,
		Hotline:         hotline,
		HasLicense:      in.HasLicense,
		Status:          constants.ApplicationStatusPending,
		AppliedAt:       time.Now(),
	}
	if err := s.partners.Create(app); err != nil {
		return nil, err
	}

	logger.Infow("partner_application_filed",
		"application_id", app.ID,
		"restaurant_name", app.RestaurantName,
	)
	return app, nil
}

// CheckStatus lets an applicant look up their application by email. An
// approved application also returns the issued credential.
func (s *PartnerService) CheckStatus(email string) (*ApplicationStatus, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrMissingFields
	}
	app, err := s.partners.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	status := &ApplicationStatus{Status: app.Status}
	if app.Status == constants.ApplicationStatusApproved {
		status.TempPassword = app.TempPassword
	}
	return status, nil
}

// List returns applications, newest first, optionally filtered by status.
func (s *PartnerService) List(statusFilter string) ([]models.PartnerApplication, error) {
	statusFilter = strings.ToLower(strings.TrimSpace(statusFilter))
	if statusFilter != "" {
		valid := false
		for _, st := range constants.DefaultApplicationStatuses() {
			if st == statusFilter {
				valid = true
				break
			}
		}
		if !valid {
			return nil, ErrInvalidStatus
		}
	}
	return s.partners.List(statusFilter)
}

// Review sets an application's status. Moving to approved issues a fresh
// generated credential; moving to rejected or back to pending clears any
// previously issued one, so only approved partners ever hold a credential.
// An application may be reviewed again to reverse an earlier decision.
func (s *PartnerService) Review(id uint, status string) (*models.PartnerApplication, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	valid := false
	for _, st := range constants.DefaultApplicationStatuses() {
		if status == st {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidStatus
	}

	app, err := s.partners.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	tempPassword := ""
	if status == constants.ApplicationStatusApproved {
		tempPassword, err = s.generateTempPassword()
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	if err := s.partners.UpdateReview(app.ID, status, tempPassword, now); err != nil {
		return nil, err
	}
	app.Status = status
	app.TempPassword = tempPassword
	app.ReviewedAt = &now

	_ = cache.DelPartnerAuthState(context.Background(), app.ID)

	logger.Infow("partner_application_reviewed",
		"application_id", app.ID,
		"status", status,
	)
	return app, nil
}

// Login authenticates a partner by email and the issued credential. Both
// sides of the comparison are trimmed, matching how the credential is
// delivered to applicants. Only approved partners can log in.
func (s *PartnerService) Login(email, password string) (*PartnerLoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	app, err := s.partners.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrInvalidCredentials
	}
	if app.Status != constants.ApplicationStatusApproved {
		return nil, ErrInvalidCredentials
	}
	if strings.TrimSpace(app.TempPassword) == "" || strings.TrimSpace(app.TempPassword) != password {
		return nil, ErrInvalidCredentials
	}

	token, err := IssueToken(s.jwtCfg, app.ID, TokenRolePartner)
	if err != nil {
		return nil, err
	}

	if err := cache.SetPartnerAuthState(context.Background(), cache.BuildPartnerAuthState(app)); err != nil {
		logger.Warnw("partner_auth_state_cache_failed",
			"partner_id", app.ID,
			"error", err,
		)
	}

	logger.Infow("partner_logged_in", "partner_id", app.ID)
	profile := app.PublicProfile()
	return &PartnerLoginResult{Token: token, Partner: &profile}, nil
}

// Profile returns an approved partner's public profile.
func (s *PartnerService) Profile(partnerID uint) (*models.PublicProfile, error) {
	app, err := s.partners.GetApprovedByID(partnerID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrRestaurantNotFound
	}
	profile := app.PublicProfile()
	return &profile, nil
}

// UpdateInfoInput carries the fields a partner may edit on their profile.
// Nil fields are left untouched.
type UpdateInfoInput struct {
	RestaurantName  *string `json:"restaurant_name"`
	RestaurantPhone *string `json:"restaurant_phone"`
	Address         *string `json:"address"`
	Hotline         *string `json:"hotline"`
	ManagerName     *string `json:"manager_name"`
	ManagerPhone    *string `json:"manager_phone"`
}

// UpdateInfo edits an approved partner's profile.
func (s *PartnerService) UpdateInfo(partnerID uint, in UpdateInfoInput) (*models.PublicProfile, error) {
	app, err := s.partners.GetApprovedByID(partnerID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrRestaurantNotFound
	}

	updates := map[string]interface{}{}
	set := func(column string, v *string) {
		if v == nil {
			return
		}
		trimmed := strings.TrimSpace(*v)
		if trimmed == "" {
			return
		}
		updates[column] = trimmed
	}
	set("restaurant_name", in.RestaurantName)
	set("restaurant_phone", in.RestaurantPhone)
	set("address", in.Address)
	set("hotline", in.Hotline)
	set("manager_name", in.ManagerName)
	set("manager_phone", in.ManagerPhone)

	if len(updates) == 0 {
		return nil, ErrMissingFields
	}
	if err := s.partners.UpdateInfo(app.ID, updates); err != nil {
		return nil, err
	}
	_ = cache.DelPartnerAuthState(context.Background(), app.ID)

	return s.Profile(partnerID)
}

// ChangePassword replaces a partner's credential after verifying the
// current one.
func (s *PartnerService) ChangePassword(partnerID uint, current, next string) error {
	current = strings.TrimSpace(current)
	next = strings.TrimSpace(next)
	if current == "" || next == "" {
		return ErrMissingFields
	}

	app, err := s.partners.GetApprovedByID(partnerID)
	if err != nil {
		return err
	}
	if app == nil {
		return ErrRestaurantNotFound
	}
	if strings.TrimSpace(app.TempPassword) != current {
		return ErrInvalidCredentials
	}

	if err := s.partners.UpdateTempPassword(app.ID, next); err != nil {
		return err
	}
	_ = cache.DelPartnerAuthState(context.Background(), app.ID)

	logger.Infow("partner_password_changed", "partner_id", app.ID)
	return nil
}

// Statistics returns application counts by status.
func (s *PartnerService) Statistics() (*repository.ApplicationStatistics, error) {
	return s.partners.Statistics()
}

// generateTempPassword draws a random credential of the configured length.
func (s *PartnerService) generateTempPassword() (string, error) {
	length := s.cfg.TempPasswordLength
	if length <= 0 {
		length = 8
	}
	out := make([]byte, length)
	max := big.NewInt(int64(len(tempPasswordCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = tempPasswordCharset[n.Int64()]
	}
	return string(out), nil
}
