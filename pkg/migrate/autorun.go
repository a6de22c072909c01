package migrate

import (
	"context"
	"fmt"

	"github.com/radhanandani03-png/Lotoria/pkg/config"
	"github.com/radhanandani03-png/Lotoria/pkg/db"
	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	"github.com/radhanandani03-png/Lotoria/pkg/logger"
)

// allModels is the schema surface kept in sync by AutoMigrate.
func allModels() []any {
	return []any{
		&models.User{},
		&models.Service{},
		&models.Product{},
		&models.Deal{},
		&models.Coupon{},
		&models.CartItem{},
		&models.Booking{},
		&models.Review{},
		&models.GalleryItem{},
		&models.TeamMember{},
		&models.CustomPage{},
		&models.HomeWidget{},
		&models.Setting{},
	}
}

// MaybeRunDev applies GORM auto-migration when the dev feature flag is on.
// Production schemas are managed out of band.
func MaybeRunDev(ctx context.Context, client *db.Client, cfg *config.Config, logg *logger.Logger) error {
	if !cfg.FeatureFlags.AutoMigrate {
		return nil
	}
	if !cfg.App.IsDev() {
		return fmt.Errorf("auto-migrate is only allowed in %s", config.AppEnvDev)
	}

	if err := client.DB().WithContext(ctx).AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	if logg != nil {
		logg.Info(ctx, "auto-migration complete")
	}
	return nil
}
