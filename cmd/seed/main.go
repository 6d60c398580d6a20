// Command seed prepares the database: it migrates the schema, loads the
// sample watch catalog when the table is empty, and provisions the initial
// admin account from configuration.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/MaulikI8/imperialwatch/config"
	"github.com/MaulikI8/imperialwatch/internal/domain/entity"
	"github.com/MaulikI8/imperialwatch/internal/domain/repository"
	"github.com/MaulikI8/imperialwatch/internal/domain/service"
	"github.com/MaulikI8/imperialwatch/internal/infra/auth"
	"github.com/MaulikI8/imperialwatch/internal/infra/persistence/model"
	"github.com/MaulikI8/imperialwatch/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seed completed")
}

func run(logger *slog.Logger) error {
	ctx := context.Background()

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "connect to postgres")
	}

	if err := db.AutoMigrate(
		&model.WatchModel{},
		&model.CustomerModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
	); err != nil {
		return errors.Wrap(err, "migrate schema")
	}
	logger.Info("Schema migrated")

	if err := seedWatches(ctx, postgres.NewWatchRepository(db), logger); err != nil {
		return err
	}

	return seedAdmin(ctx, postgres.NewCustomerRepository(db), auth.NewBcryptHasher(cfg), cfg.Seed, logger)
}

func seedWatches(ctx context.Context, repo repository.WatchRepository, logger *slog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "count watches")
	}
	if count > 0 {
		logger.Info("Watch catalog already seeded", slog.Int64("count", count))

		return nil
	}

	watches := sampleWatches()
	for _, watch := range watches {
		if err := repo.Create(ctx, watch); err != nil {
			return errors.Wrapf(err, "insert sample watch %q", watch.Name)
		}
	}
	logger.Info("Sample watch catalog inserted", slog.Int("count", len(watches)))

	return nil
}

func seedAdmin(ctx context.Context, repo repository.CustomerRepository, hasher service.PasswordHasher, seed *config.SeedConfig, logger *slog.Logger) error {
	if seed == nil || seed.AdminEmail == "" || seed.AdminPassword == "" {
		logger.Info("Admin seed not configured, skipping")

		return nil
	}

	email := strings.ToLower(strings.TrimSpace(seed.AdminEmail))

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		logger.Info("Admin account already exists", slog.String("email", email))

		return nil
	} else if !errors.Is(err, repository.ErrCustomerNotFound) {
		return errors.Wrap(err, "check admin account")
	}

	hash, err := hasher.Hash(seed.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}

	admin := &entity.Customer{
		Name:         seed.AdminName,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "insert admin account")
	}
	logger.Info("Admin account created", slog.String("email", email))

	return nil
}

func sampleWatches() []*entity.Watch {
	return []*entity.Watch{
		{
			Name:        "Rolex Submariner",
			Brand:       "Rolex",
			Price:       1700000,
			Description: "The iconic diving watch that has become a symbol of luxury and precision. Water-resistant to 300 meters.",
			ImageURL:    "./images/rolex.jpg",
			Category:    "Diving",
			InStock:     true,
			Rating:      4.9,
		},
		{
			Name:        "Rolex Daytona",
			Brand:       "Rolex",
			Price:       2500000,
			Description: "The ultimate racing chronograph. Precision timing meets luxury craftsmanship.",
			ImageURL:    "./images/Daytona.jpg",
			Category:    "Chronograph",
			InStock:     true,
			Rating:      4.8,
		},
		{
			Name:        "Seiko Marinemaster",
			Brand:       "Seiko",
			Price:       65000,
			Description: "Professional 300M diving watch with exceptional build quality and reliability.",
			ImageURL:    "./images/Seiko.jpg",
			Category:    "Diving",
			InStock:     true,
			Rating:      4.7,
		},
		{
			Name:        "Apple SmartWatch Series 9",
			Brand:       "Apple",
			Price:       76500,
			Description: "Latest smartwatch for fitness and health tracking with premium materials.",
			ImageURL:    "./images/apple.jpg",
			Category:    "Smart Watch",
			InStock:     true,
			Rating:      4.6,
		},
		{
			Name:        "Patek Philippe Nautilus",
			Brand:       "Patek Philippe",
			Price:       4500000,
			Description: "The legendary sports watch that redefined luxury timepieces. A true masterpiece.",
			ImageURL:    "./images/patek.jpg",
			Category:    "Sports",
			InStock:     true,
			Rating:      4.9,
		},
		{
			Name:        "Omega Speedmaster Moonwatch",
			Brand:       "Omega",
			Price:       850000,
			Description: "The first watch worn on the moon. A piece of history on your wrist.",
			ImageURL:    "./images/omega-speedmaster-moonwatch-professional-co-axial-master-chronometer-chronograph-42-mm-31030425001002-198df2.jpg",
			Category:    "Chronograph",
			InStock:     true,
			Rating:      4.8,
		},
		{
			Name:        "Cartier Santos",
			Brand:       "Cartier",
			Price:       1200000,
			Description: "Aviation-inspired luxury watch with distinctive square case design.",
			ImageURL:    "./images/watch3.jpg",
			Category:    "Luxury",
			InStock:     true,
			Rating:      4.7,
		},
		{
			Name:        "Samsung Galaxy Watch 6",
			Brand:       "Samsung",
			Price:       36000,
			Description: "Smart fitness tracking with advanced health monitoring capabilities.",
			ImageURL:    "./images/galaxy.jpg",
			Category:    "Smart Watch",
			InStock:     true,
			Rating:      4.5,
		},
		{
			Name:        "Audemars Piguet Royal Oak",
			Brand:       "Audemars Piguet",
			Price:       3800000,
			Description: "The revolutionary octagonal design that changed luxury watchmaking forever.",
			ImageURL:    "./images/audemars.jpg",
			Category:    "Sports",
			InStock:     true,
			Rating:      4.9,
		},
		{
			Name:        "Breitling Navitimer",
			Brand:       "Breitling",
			Price:       950000,
			Description: "The ultimate pilot's watch with slide rule bezel for aviation calculations.",
			ImageURL:    "./images/breitling.jpg",
			Category:    "Aviation",
			InStock:     true,
			Rating:      4.6,
		},
		{
			Name:        "Tag Heuer Monaco",
			Brand:       "Tag Heuer",
			Price:       750000,
			Description: "The square racing chronograph made famous by Steve McQueen.",
			ImageURL:    "./images/breitling-watch-store.jpg",
			Category:    "Racing",
			InStock:     true,
			Rating:      4.5,
		},
		{
			Name:        "Fitbit Versa 4",
			Brand:       "Fitbit",
			Price:       25000,
			Description: "Advanced fitness tracking with heart rate monitoring and GPS.",
			ImageURL:    "./images/fitbit.jpg",
			Category:    "Fitness",
			InStock:     true,
			Rating:      4.3,
		},
	}
}
