package controllers

import (
	"net/http"

	"rent-reminder-backend/models"
	"rent-reminder-backend/repositories"
	"rent-reminder-backend/services"
	"rent-reminder-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateTenantInput defines the expected JSON structure for creating a tenant
type CreateTenantInput struct {
	Name           string      `json:"name" binding:"required"`
	Phone          string      `json:"phone" binding:"required"`
	Email          *string     `json:"email"`
	Address        *string     `json:"address"`
	LeaseStartDate models.Date `json:"leaseStartDate"`
	LeaseEndDate   models.Date `json:"leaseEndDate"`
	MonthlyRent    *float64    `json:"monthlyRent" binding:"required"`
}

// UpdateTenantInput defines the expected JSON structure for updating a tenant
type UpdateTenantInput struct {
	Name           *string      `json:"name"`
	Phone          *string      `json:"phone"`
	Email          *string      `json:"email"`
	Address        *string      `json:"address"`
	LeaseStartDate *models.Date `json:"leaseStartDate"`
	LeaseEndDate   *models.Date `json:"leaseEndDate"`
	MonthlyRent    *float64     `json:"monthlyRent"`
}

type ListTenantsQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Keyword   string `form:"keyword"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

type TenantController struct {
	Tenants *services.TenantService
}

// CreateTenant registers a new tenant
func (ctl *TenantController) CreateTenant(c *gin.Context) {
	var input CreateTenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Invalid input: "+err.Error())
		return
	}

	tenant, err := ctl.Tenants.Create(c.Request.Context(), services.TenantInput{
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		Address:        input.Address,
		LeaseStartDate: input.LeaseStartDate,
		LeaseEndDate:   input.LeaseEndDate,
		RentAmount:     *input.MonthlyRent,
	})
	if err != nil {
		respondServiceError(c, err, utils.CodeInternal, "Failed to create tenant")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, tenant, "Tenant created")
}

// GetTenants lists tenants one page at a time
func (ctl *TenantController) GetTenants(c *gin.Context) {
	var query ListTenantsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Invalid query: "+err.Error())
		return
	}

	filter := repositories.TenantFilter{
		Keyword:  query.Keyword,
		SortBy:   sortKey(query.SortBy),
		SortDesc: query.SortOrder != "asc",
		Page:     query.Page,
		Limit:    query.Limit,
	}
	filter.Page, filter.Limit = services.NormalizePage(filter.Page, filter.Limit)

	tenants, total, err := ctl.Tenants.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, utils.CodeInternal, "Failed to retrieve tenants")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"total": total,
		"page":  filter.Page,
		"limit": filter.Limit,
		"items": tenants,
	}, "Tenants retrieved")
}

// GetTenant retrieves a specific tenant by ID
func (ctl *TenantController) GetTenant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	tenant, err := ctl.Tenants.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, utils.CodeInternal, "Failed to retrieve tenant")
		return
	}

	utils.RespondWithData(c, http.StatusOK, tenant, "Tenant retrieved")
}

// UpdateTenant updates an existing tenant
func (ctl *TenantController) UpdateTenant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateTenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Invalid input: "+err.Error())
		return
	}

	tenant, err := ctl.Tenants.Update(c.Request.Context(), id, services.TenantPatch{
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		Address:        input.Address,
		LeaseStartDate: input.LeaseStartDate,
		LeaseEndDate:   input.LeaseEndDate,
		RentAmount:     input.MonthlyRent,
	})
	if err != nil {
		respondServiceError(c, err, utils.CodeInternal, "Failed to update tenant")
		return
	}

	utils.RespondWithData(c, http.StatusOK, tenant, "Tenant updated")
}

// DeleteTenant deletes a tenant and its reminders
func (ctl *TenantController) DeleteTenant(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.Tenants.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, utils.CodeInternal, "Failed to delete tenant")
		return
	}

	utils.RespondWithData(c, http.StatusOK, nil, "Tenant deleted")
}
