package models

import (
	"time"
)

// PartnerApplication is a restaurant onboarding record. Once approved it
// doubles as the restaurant account and is what customers browse.
type PartnerApplication struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	ManagerName     string     `gorm:"not null" json:"manager_name"`
	ManagerPhone    string     `gorm:"not null" json:"manager_phone"`
	RestaurantName  string     `gorm:"index;not null" json:"restaurant_name"`
	RestaurantPhone string     `gorm:"not null" json:"restaurant_phone"`
	RestaurantEmail string     `gorm:"uniqueIndex;not null" json:"restaurant_email"`
	Address         string     `gorm:"not null" json:"address"`
	Hotline         string     `gorm:"default:'N/A'" json:"hotline"`
	HasLicense      bool       `gorm:"not null" json:"has_license"`
	Status          string     `gorm:"index;not null;default:'pending'" json:"status"`
	TempPassword    string     `json:"temp_password,omitempty"` // set iff status = approved
	AppliedAt       time.Time  `gorm:"index" json:"applied_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"-"`
	UpdatedAt       time.Time  `json:"-"`
}

// TableName sets the table name.
func (PartnerApplication) TableName() string {
	return "partner_applications"
}

// PublicProfile is the restaurant view exposed to customers and returned on
// login; it never carries the temp password.
type PublicProfile struct {
	ID              uint   `json:"id"`
	RestaurantName  string `json:"restaurant_name"`
	RestaurantEmail string `json:"restaurant_email"`
	RestaurantPhone string `json:"restaurant_phone"`
	Address         string `json:"address"`
	Hotline         string `json:"hotline"`
	ManagerName     string `json:"manager_name"`
}

// PublicProfile projects the application onto its customer-facing view.
func (a *PartnerApplication) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:              a.ID,
		RestaurantName:  a.RestaurantName,
		RestaurantEmail: a.RestaurantEmail,
		RestaurantPhone: a.RestaurantPhone,
		Address:         a.Address,
		Hotline:         a.Hotline,
		ManagerName:     a.ManagerName,
	}
}
