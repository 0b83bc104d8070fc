package services

import (
	"context"
	"strings"

	"rent-reminder-backend/models"
	"rent-reminder-backend/repositories"
	"rent-reminder-backend/utils"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type TenantInput struct {
	Name           string
	Phone          string
	Email          *string
	Address        *string
	LeaseStartDate models.Date
	LeaseEndDate   models.Date
	RentAmount     float64
}

// TenantPatch changes only the fields that are set.
type TenantPatch struct {
	Name           *string
	Phone          *string
	Email          *string
	Address        *string
	LeaseStartDate *models.Date
	LeaseEndDate   *models.Date
	RentAmount     *float64
}

type TenantService struct {
	tenants repositories.TenantRepository
}

func NewTenantService(tenants repositories.TenantRepository) *TenantService {
	return &TenantService{tenants: tenants}
}

func (s *TenantService) Create(ctx context.Context, input TenantInput) (*models.Tenant, error) {
	tenant := &models.Tenant{
		Name:           strings.TrimSpace(input.Name),
		Phone:          utils.CleanPhone(input.Phone),
		Email:          optional(input.Email),
		Address:        optional(input.Address),
		LeaseStartDate: input.LeaseStartDate,
		LeaseEndDate:   input.LeaseEndDate,
		RentAmount:     input.RentAmount,
	}
	if err := validateTenant(tenant); err != nil {
		return nil, err
	}
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, storageErr("create tenant", err)
	}
	return tenant, nil
}

func (s *TenantService) Get(ctx context.Context, id uint) (*models.Tenant, error) {
	tenant, err := s.tenants.Get(ctx, id)
	if err != nil {
		return nil, storageErr("get tenant", err)
	}
	if tenant == nil {
		return nil, ErrTenantNotFound
	}
	return tenant, nil
}

func (s *TenantService) Update(ctx context.Context, id uint, patch TenantPatch) (*models.Tenant, error) {
	tenant, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		tenant.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Phone != nil {
		tenant.Phone = utils.CleanPhone(*patch.Phone)
	}
	if patch.Email != nil {
		tenant.Email = optional(patch.Email)
	}
	if patch.Address != nil {
		tenant.Address = optional(patch.Address)
	}
	if patch.LeaseStartDate != nil {
		tenant.LeaseStartDate = *patch.LeaseStartDate
	}
	if patch.LeaseEndDate != nil {
		tenant.LeaseEndDate = *patch.LeaseEndDate
	}
	if patch.RentAmount != nil {
		tenant.RentAmount = *patch.RentAmount
	}
	if err := validateTenant(tenant); err != nil {
		return nil, err
	}

	updated, err := s.tenants.Update(ctx, tenant)
	if err != nil {
		return nil, storageErr("update tenant", err)
	}
	if !updated {
		return nil, ErrTenantNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes the tenant and every reminder that belongs to it.
func (s *TenantService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.tenants.Delete(ctx, id)
	if err != nil {
		return storageErr("delete tenant", err)
	}
	if !deleted {
		return ErrTenantNotFound
	}
	return nil
}

func (s *TenantService) List(ctx context.Context, filter repositories.TenantFilter) ([]models.Tenant, int64, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	filter.Page, filter.Limit = NormalizePage(filter.Page, filter.Limit)
	tenants, total, err := s.tenants.List(ctx, filter)
	if err != nil {
		return nil, 0, storageErr("list tenants", err)
	}
	return tenants, total, nil
}

// NormalizePage clamps paging parameters to page >= 1 and
// 1 <= limit <= MaxPageSize.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

func validateTenant(t *models.Tenant) error {
	if t.Name == "" {
		return invalid("name", "name is required")
	}
	if t.Phone == "" {
		return invalid("phone", "phone is required")
	}
	if !utils.ValidatePhone(t.Phone) {
		return invalid("phone", "invalid phone number format")
	}
	if t.LeaseStartDate.IsZero() || t.LeaseEndDate.IsZero() {
		return invalid("leaseDate", "lease start and end dates are required")
	}
	if !t.LeaseStartDate.Before(t.LeaseEndDate) {
		return invalid("leaseDate", "lease start date must be before lease end date")
	}
	if !(t.RentAmount > 0) {
		return invalid("monthlyRent", "rent amount must be greater than 0")
	}
	return nil
}

// optional maps blank strings to nil so they are stored as NULL.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
