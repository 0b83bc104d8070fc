package services_test

import (
	"context"
	"testing"

	"rent-reminder-backend/models"
	"rent-reminder-backend/repositories"
	"rent-reminder-backend/services"
	"rent-reminder-backend/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTenantInput() services.TenantInput {
	blank := "  "
	return services.TenantInput{
		Name:           " Alice ",
		Phone:          "138-0013-8000",
		Email:          &blank,
		LeaseStartDate: models.MustParseDate("2024-01-01"),
		LeaseEndDate:   models.MustParseDate("2024-12-31"),
		RentAmount:     3500,
	}
}

func TestTenantServiceCreate(t *testing.T) {
	db := testutil.NewDB(t)
	svc := services.NewTenantService(repositories.NewTenantRepository(db))

	tenant, err := svc.Create(context.Background(), validTenantInput())
	require.NoError(t, err)
	assert.NotZero(t, tenant.ID)
	assert.Equal(t, "Alice", tenant.Name)
	assert.Equal(t, "13800138000", tenant.Phone)
	assert.Nil(t, tenant.Email)

	got, err := svc.Get(context.Background(), tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MustParseDate("2024-12-31"), got.LeaseEndDate)
}

func TestTenantServiceValidation(t *testing.T) {
	db := testutil.NewDB(t)
	svc := services.NewTenantService(repositories.NewTenantRepository(db))

	tests := map[string]func(in *services.TenantInput){
		"name":       func(in *services.TenantInput) { in.Name = " " },
		"phone":      func(in *services.TenantInput) { in.Phone = "" },
		"phoneChars": func(in *services.TenantInput) { in.Phone = "call me" },
		"noEnd":      func(in *services.TenantInput) { in.LeaseEndDate = models.Date{} },
		"order":      func(in *services.TenantInput) { in.LeaseEndDate = in.LeaseStartDate },
		"rent":       func(in *services.TenantInput) { in.RentAmount = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := validTenantInput()
			mutate(&in)
			_, err := svc.Create(context.Background(), in)
			var validationErr *services.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestTenantServiceUpdateAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	svc := services.NewTenantService(repositories.NewTenantRepository(db))
	ctx := context.Background()

	tenant, err := svc.Create(ctx, validTenantInput())
	require.NoError(t, err)

	rent := 4000.0
	end := models.MustParseDate("2025-06-30")
	updated, err := svc.Update(ctx, tenant.ID, services.TenantPatch{RentAmount: &rent, LeaseEndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, 4000.0, updated.RentAmount)
	assert.Equal(t, end, updated.LeaseEndDate)
	assert.Equal(t, "Alice", updated.Name)

	bad := models.MustParseDate("2023-01-01")
	_, err = svc.Update(ctx, tenant.ID, services.TenantPatch{LeaseEndDate: &bad})
	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.Update(ctx, 9999, services.TenantPatch{RentAmount: &rent})
	assert.ErrorIs(t, err, services.ErrTenantNotFound)

	require.NoError(t, svc.Delete(ctx, tenant.ID))
	assert.ErrorIs(t, svc.Delete(ctx, tenant.ID), services.ErrTenantNotFound)
	_, err = svc.Get(ctx, tenant.ID)
	assert.ErrorIs(t, err, services.ErrTenantNotFound)
}

func TestNormalizePage(t *testing.T) {
	page, limit := services.NormalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, services.DefaultPageSize, limit)

	page, limit = services.NormalizePage(3, 500)
	assert.Equal(t, 3, page)
	assert.Equal(t, services.MaxPageSize, limit)
}
