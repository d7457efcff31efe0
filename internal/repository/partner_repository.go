package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/yallaorder-next/internal/constants"
	"github.com/yallaorder-next/internal/models"

	"gorm.io/gorm"
)

// ApplicationStatistics aggregates application counts per status.
type ApplicationStatistics struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// PartnerRepository is the partner application data access interface.
// Approved rows double as the restaurants customers browse.
type PartnerRepository interface {
	Create(app *models.PartnerApplication) error
	GetByID(id uint) (*models.PartnerApplication, error)
	GetByEmail(email string) (*models.PartnerApplication, error)
	List(statusFilter string) ([]models.PartnerApplication, error)
	ListApproved() ([]models.PartnerApplication, error)
	SearchApproved(query string) ([]models.PartnerApplication, error)
	GetApprovedByID(id uint) (*models.PartnerApplication, error)
	UpdateReview(id uint, status string, tempPassword string, reviewedAt time.Time) error
	UpdateInfo(id uint, updates map[string]interface{}) error
	UpdateTempPassword(id uint, tempPassword string) error
	Statistics() (*ApplicationStatistics, error)
}

// GormPartnerRepository is the GORM implementation.
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository creates the partner repository.
func NewPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// Create inserts an application.
func (r *GormPartnerRepository) Create(app *models.PartnerApplication) error {
	return r.db.Create(app).Error
}

// GetByID fetches an application by id.
func (r *GormPartnerRepository) GetByID(id uint) (*models.PartnerApplication, error) {
	var app models.PartnerApplication
	err := r.db.First(&app, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByEmail fetches an application by restaurant email.
func (r *GormPartnerRepository) GetByEmail(email string) (*models.PartnerApplication, error) {
	var app models.PartnerApplication
	err := r.db.Where("restaurant_email = ?", email).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// List returns applications newest-first, optionally filtered by status.
func (r *GormPartnerRepository) List(statusFilter string) ([]models.PartnerApplication, error) {
	var apps []models.PartnerApplication
	query := r.db.Model(&models.PartnerApplication{})
	if trimmed := strings.TrimSpace(statusFilter); trimmed != "" {
		query = query.Where("status = ?", trimmed)
	}
	if err := query.Order("applied_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// ListApproved returns approved restaurants sorted by name.
func (r *GormPartnerRepository) ListApproved() ([]models.PartnerApplication, error) {
	var apps []models.PartnerApplication
	err := r.db.Where("status = ?", constants.ApplicationStatusApproved).
		Order("restaurant_name ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// SearchApproved returns approved restaurants whose name contains the query,
// case-insensitively.
func (r *GormPartnerRepository) SearchApproved(query string) ([]models.PartnerApplication, error) {
	var apps []models.PartnerApplication
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	err := r.db.Where("status = ? AND LOWER(restaurant_name) LIKE ?", constants.ApplicationStatusApproved, like).
		Order("restaurant_name ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// GetApprovedByID fetches an approved restaurant by id.
func (r *GormPartnerRepository) GetApprovedByID(id uint) (*models.PartnerApplication, error) {
	var app models.PartnerApplication
	err := r.db.Where("id = ? AND status = ?", id, constants.ApplicationStatusApproved).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateReview writes a review decision. The temp password column is always
// written so a rejection clears any previously issued credential.
func (r *GormPartnerRepository) UpdateReview(id uint, status string, tempPassword string, reviewedAt time.Time) error {
	return r.db.Model(&models.PartnerApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        status,
			"temp_password": tempPassword,
			"reviewed_at":   reviewedAt,
		}).Error
}

// UpdateInfo writes contact detail changes.
func (r *GormPartnerRepository) UpdateInfo(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.PartnerApplication{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// UpdateTempPassword replaces the stored credential.
func (r *GormPartnerRepository) UpdateTempPassword(id uint, tempPassword string) error {
	return r.db.Model(&models.PartnerApplication{}).
		Where("id = ?", id).
		Update("temp_password", tempPassword).Error
}

// Statistics aggregates application counts.
func (r *GormPartnerRepository) Statistics() (*ApplicationStatistics, error) {
	stats := &ApplicationStatistics{}
	if err := r.db.Model(&models.PartnerApplication{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	counts := []struct {
		status string
		dest   *int64
	}{
		{constants.ApplicationStatusPending, &stats.Pending},
		{constants.ApplicationStatusApproved, &stats.Approved},
		{constants.ApplicationStatusRejected, &stats.Rejected},
	}
	for _, c := range counts {
		if err := r.db.Model(&models.PartnerApplication{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}
