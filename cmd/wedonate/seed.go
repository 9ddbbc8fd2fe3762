package main

import (
	"context"
	"fmt"

	"wedonate/internal/db"
	"wedonate/internal/seed"
	"wedonate/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with demo data",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		orgRepo := store.NewOrganizationRepository(pool)
		campaignRepo := store.NewCampaignRepository(pool)
		locationRepo := store.NewLocationRepository(pool)

		logrus.Info("Seeding organizations...")
		if err := seed.SeedOrganizations(ctx, orgRepo); err != nil {
			return fmt.Errorf("failed to seed organizations: %w", err)
		}

		logrus.Info("Seeding campaigns...")
		if err := seed.SeedCampaigns(ctx, campaignRepo); err != nil {
			return fmt.Errorf("failed to seed campaigns: %w", err)
		}

		logrus.Info("Seeding locations...")
		if err := seed.SeedLocations(ctx, locationRepo); err != nil {
			return fmt.Errorf("failed to seed locations: %w", err)
		}

		logrus.Info("Seed completed")

		return nil
	},
}
