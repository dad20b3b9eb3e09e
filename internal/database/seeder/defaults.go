package seeder

import (
	"log"

	"jobboard/internal/config"
)

func Defaults(cfg config.Config, logger *log.Logger) []Seeder {
	return []Seeder{
		AdminSeeder{Email: cfg.Admin.SeedEmail, Password: cfg.Admin.SeedPassword, Logger: logger},
		JobSeeder{Logger: logger},
	}
}
