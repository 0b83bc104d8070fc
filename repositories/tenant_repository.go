package repositories

import (
	"context"
	"errors"

	"rent-reminder-backend/models"

	"gorm.io/gorm"
)

// TenantFilter selects one page of tenants. SortBy must be one of
// TenantSortFields, anything else falls back to created_at.
type TenantFilter struct {
	Keyword  string
	SortBy   string
	SortDesc bool
	Page     int
	Limit    int
}

var TenantSortFields = map[string]string{
	"id":               "id",
	"name":             "name",
	"phone":            "phone",
	"rent_amount":      "rent_amount",
	"lease_start_date": "lease_start_date",
	"lease_end_date":   "lease_end_date",
	"created_at":       "created_at",
	"updated_at":       "updated_at",
}

type TenantRepository interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	// Get returns nil when the tenant does not exist.
	Get(ctx context.Context, id uint) (*models.Tenant, error)
	// Update writes every editable column and reports false when the tenant
	// does not exist.
	Update(ctx context.Context, tenant *models.Tenant) (bool, error)
	// Delete removes the tenant together with its reminders.
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter TenantFilter) ([]models.Tenant, int64, error)
	// ListLeaseEndingBetween returns tenants whose lease ends in [from, to].
	ListLeaseEndingBetween(ctx context.Context, from, to models.Date) ([]models.Tenant, error)
}

type tenantRepo struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepo{db: db}
}

func (r *tenantRepo) Create(ctx context.Context, tenant *models.Tenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

func (r *tenantRepo) Get(ctx context.Context, id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.WithContext(ctx).First(&tenant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantRepo) Update(ctx context.Context, tenant *models.Tenant) (bool, error) {
	result := r.db.WithContext(ctx).Model(tenant).
		Select("name", "phone", "email", "address", "lease_start_date", "lease_end_date", "rent_amount").
		Updates(tenant)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *tenantRepo) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", id).Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Tenant{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *tenantRepo) List(ctx context.Context, filter TenantFilter) ([]models.Tenant, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Tenant{})
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := TenantSortFields[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	order := column + " ASC"
	if filter.SortDesc {
		order = column + " DESC"
	}

	var tenants []models.Tenant
	err := query.Order(order).Order("id").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&tenants).Error
	if err != nil {
		return nil, 0, err
	}
	return tenants, total, nil
}

func (r *tenantRepo) ListLeaseEndingBetween(ctx context.Context, from, to models.Date) ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := r.db.WithContext(ctx).
		Where("lease_end_date >= ? AND lease_end_date <= ?", from, to).
		Order("lease_end_date, id").
		Find(&tenants).Error
	if err != nil {
		return nil, err
	}
	return tenants, nil
}
