package repository

import (
	"context"

	"payout-service/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, id uint) (*models.Payment, error)
	FindByRequestID(ctx context.Context, requestID string) (*models.Payment, error)
	UpdateStatusByID(ctx context.Context, id uint, status models.Status) (int64, error)
	UpdateStatusByRequestID(ctx context.Context, requestID string, status models.Status) (int64, error)
	List(ctx context.Context) ([]models.Payment, error)
}

type gormPaymentRepo struct {
	db *gorm.DB
}

func NewGormPaymentRepo(db *gorm.DB) PaymentRepository {
	return &gormPaymentRepo{db: db}
}

func (r *gormPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *gormPaymentRepo) FindByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *gormPaymentRepo) FindByRequestID(ctx context.Context, requestID string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// UpdateStatusByID writes the status as a single UPDATE and returns the
// number of rows touched, so callers can distinguish an unknown id.
func (r *gormPaymentRepo) UpdateStatusByID(ctx context.Context, id uint, status models.Status) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *gormPaymentRepo) UpdateStatusByRequestID(ctx context.Context, requestID string, status models.Status) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("request_id = ?", requestID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// List returns payments in storage order (primary key order).
func (r *gormPaymentRepo) List(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).Order("id").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
