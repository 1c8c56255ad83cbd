package paymentrepo

import (
	"context"
	"errors"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/payment"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository appends to and reads the payments table.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Omit("Parcel").Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectNotFoundErrorWithCause("parcel", p.ParcelID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate("payment:"+p.ID().String(), p)
	return nil
}

// GetAllByParcel returns the parcel's payments oldest first.
func (r *GormPaymentRepository) GetAllByParcel(ctx context.Context, parcelID kernel.ParcelID) ([]*payment.Payment, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Uint64()).
		Order("created_at, seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}
