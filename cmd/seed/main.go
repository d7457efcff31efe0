package main

import (
	"fmt"
	"os"
	"time"

	"github.com/yallaorder-next/internal/config"
	"github.com/yallaorder-next/internal/constants"
	"github.com/yallaorder-next/internal/logger"
	"github.com/yallaorder-next/internal/models"

	"github.com/shopspring/decimal"
)

// Seeds a development database with a few approved restaurants and menus.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns: cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns: cfg.Database.Pool.MaxIdleConns,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "init database: %v\n", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
		os.Exit(1)
	}

	if err := seed(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	logger.Infow("seed_completed")
}

func seed() error {
	var count int64
	if err := models.DB.Model(&models.PartnerApplication{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Infow("seed_skipped", "reason", "partner_applications_not_empty")
		return nil
	}

	now := time.Now()
	restaurants := []struct {
		app  models.PartnerApplication
		menu []models.MenuItem
	}{
		{
			app: models.PartnerApplication{
				ManagerName:     "Omar Hassan",
				ManagerPhone:    "01000000001",
				RestaurantName:  "Koshary El Tahrir",
				RestaurantPhone: "0225550001",
				RestaurantEmail: "koshary@example.com",
				Address:         "Tahrir Square, Cairo",
				Hotline:         "19001",
				HasLicense:      true,
				Status:          constants.ApplicationStatusApproved,
				TempPassword:    "seedpass1",
				AppliedAt:       now,
				ReviewedAt:      &now,
			},
			menu: []models.MenuItem{
				{Name: "Koshary Regular", Description: "Rice, lentils, pasta, crispy onions", Price: money(45)},
				{Name: "Koshary Large", Description: "The full plate", Price: money(65)},
			},
		},
		{
			app: models.PartnerApplication{
				ManagerName:     "Sara Adel",
				ManagerPhone:    "01000000002",
				RestaurantName:  "Pizza Roma",
				RestaurantPhone: "0225550002",
				RestaurantEmail: "roma@example.com",
				Address:         "26 July St, Zamalek",
				Hotline:         constants.DefaultHotline,
				HasLicense:      true,
				Status:          constants.ApplicationStatusApproved,
				TempPassword:    "seedpass2",
				AppliedAt:       now,
				ReviewedAt:      &now,
			},
			menu: []models.MenuItem{
				{Name: "Margherita", Description: "Tomato, mozzarella, basil", Price: money(120)},
				{Name: "Pepperoni", Description: "Double pepperoni", Price: money(150)},
			},
		},
	}

	for _, r := range restaurants {
		app := r.app
		if err := models.DB.Create(&app).Error; err != nil {
			return err
		}
		for _, item := range r.menu {
			item.RestaurantID = app.ID
			if err := models.DB.Create(&item).Error; err != nil {
				return err
			}
		}
		logger.Infow("restaurant_seeded",
			"restaurant_id", app.ID,
			"restaurant_name", app.RestaurantName,
		)
	}
	return nil
}

func money(amount int64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromInt(amount))
}
