package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/middleware"
	"realestate-listings/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PropertyManager is the property CRUD surface the handlers depend on.
type PropertyManager interface {
	Create(ctx context.Context, ownerID string, fields models.PropertyFields, attrs models.Attributes) (*models.PropertyEntity, error)
	Get(ctx context.Context, id string) (*models.PropertyEntity, error)
	// OwnerOf returns "" when the property has no relational row.
	OwnerOf(ctx context.Context, id string) (string, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.PropertyEntity, error)
	Update(ctx context.Context, id string, partial map[string]interface{}) (*models.PropertyEntity, error)
	Delete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, filter models.SearchFilter) ([]models.PropertyEntity, error)
}

type PropertyHandler struct {
	properties PropertyManager
}

func NewPropertyHandler(properties PropertyManager) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

// CreatePropertyRequest carries the relational fields at the top level and
// the document attributes nested.
type CreatePropertyRequest struct {
	models.PropertyFields
	Attributes models.Attributes `json:"attributes"`
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		_ = c.Error(apperrors.ErrUnauthorized)
		return
	}

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err))
		return
	}

	entity, err := h.properties.Create(c.Request.Context(), user.ID, req.PropertyFields, req.Attributes)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, entity)
}

func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	entity, err := h.properties.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if entity == nil {
		_ = c.Error(apperrors.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (h *PropertyHandler) ListByOwner(c *gin.Context) {
	entities, err := h.properties.ListByOwner(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entities)
}

func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	filter, err := parseSearchFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	entities, err := h.properties.Search(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entities)
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id := c.Param("id")
	if !h.authorizeOwner(c, id) {
		return
	}

	partial := make(map[string]interface{})
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&partial); err != nil {
		_ = c.Error(fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err))
		return
	}

	entity, err := h.properties.Update(c.Request.Context(), id, partial)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if entity == nil {
		_ = c.Error(apperrors.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id := c.Param("id")
	if !h.authorizeOwner(c, id) {
		return
	}

	deleted, err := h.properties.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !deleted {
		_ = c.Error(apperrors.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// authorizeOwner lets the owner or an admin through, checking ownership on
// the relational row. It records the error and returns false otherwise.
func (h *PropertyHandler) authorizeOwner(c *gin.Context, id string) bool {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		_ = c.Error(apperrors.ErrUnauthorized)
		return false
	}
	ownerID, err := h.properties.OwnerOf(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return false
	}
	if ownerID == "" {
		_ = c.Error(apperrors.ErrNotFound)
		return false
	}
	if ownerID != user.ID && !user.IsAdmin() {
		_ = c.Error(fmt.Errorf("user %s on property %s: %w", user.ID, id, apperrors.ErrForbidden))
		return false
	}
	return true
}

func parseSearchFilter(c *gin.Context) (models.SearchFilter, error) {
	var filter models.SearchFilter
	if v := strings.TrimSpace(c.Query("property_type")); v != "" {
		pt := models.PropertyType(strings.ToLower(v))
		filter.PropertyType = &pt
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		status := models.PropertyStatus(strings.ToLower(v))
		filter.Status = &status
	}
	for param, dst := range map[string]**decimal.Decimal{"min_price": &filter.MinPrice, "max_price": &filter.MaxPrice} {
		v := strings.TrimSpace(c.Query(param))
		if v == "" {
			continue
		}
		price, err := decimal.NewFromString(v)
		if err != nil {
			return filter, fmt.Errorf("%w: %s must be a number", apperrors.ErrInvalidInput, param)
		}
		*dst = &price
	}
	filter.Location = c.Query("location")
	return filter, nil
}
