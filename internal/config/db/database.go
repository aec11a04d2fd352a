package db

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/evermeet/booking-go/internal/config"
	"github.com/evermeet/booking-go/internal/domain/event"
	"github.com/evermeet/booking-go/internal/domain/regform"
	"github.com/evermeet/booking-go/internal/domain/registration"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE registration_status AS ENUM ('draft', 'submitted', 'under_review', 'approved', 'rejected', 'withdrawn'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE payment_status AS ENUM ('none', 'pending', 'paid', 'failed'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Error().Err(err).Msgf("Failed to create enum: %s", enum)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DB")
	}

	createEnums()

	if err := DB.AutoMigrate(
		&event.Event{},
		&regform.RegistrationConfig{},
		&registration.Registration{},
	); err != nil {
		log.Fatal().Err(err).Msg("Failed to auto migrate")
	}

	log.Info().Msg("Database connected and migrated")
}

// InitWithGormDB swaps the global handle, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
