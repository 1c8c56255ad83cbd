package postgres

import (
	"github.com/LONJEZ/Delivery-app/internal/adapters/out/postgres/parcelrepo"
	"github.com/LONJEZ/Delivery-app/internal/adapters/out/postgres/paymentrepo"
	"github.com/LONJEZ/Delivery-app/internal/adapters/out/postgres/sequencerepo"
	"github.com/LONJEZ/Delivery-app/internal/adapters/out/postgres/trackerrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the registry tables. Parcels go first, the
// tracker and payment tables reference them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&trackerrepo.TrackerDTO{},
		&paymentrepo.PaymentDTO{},
		&sequencerepo.SequenceDTO{},
	)
}
