package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"praedex-api/internal/apperr"
	"praedex-api/internal/models"
	"praedex-api/internal/service"
)

// PropertyHandler handles listing requests
type PropertyHandler struct {
	service PropertyService
}

// Service interface for dependency injection
type PropertyService interface {
	Nearest(ctx context.Context, ref *models.Coordinate, limit *int) (service.Result, error)
	GetByID(ctx context.Context, id string) (models.Listing, error)
	Add(ctx context.Context, in models.NewListing) (models.Listing, error)
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(svc PropertyService) *PropertyHandler {
	return &PropertyHandler{service: svc}
}

// CreatePropertyRequest is the POST /properties body.
type CreatePropertyRequest struct {
	Title    string   `json:"title" binding:"required"`
	Price    float64  `json:"price" binding:"required,gt=0"`
	Type     string   `json:"type"`
	Location string   `json:"location"`
	Lat      *float64 `json:"lat" binding:"required"`
	Lng      *float64 `json:"lng" binding:"required"`
}

// List handles GET /properties requests
//
// @Summary      List properties
// @Description  Returns all listings. When userLat and userLng are both supplied, each listing carries distanceFromUser and the array is sorted ascending by it.
// @Tags         properties
// @Produce      json
// @Param        userLat  query     number  false  "Caller latitude [-90,90]"
// @Param        userLng  query     number  false  "Caller longitude [-180,180]"
// @Success      200      {array}   models.RankedListing
// @Failure      400      {object}  map[string]string
// @Router       /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	ref, ok := coordsFromQuery(c)
	if !ok {
		return
	}

	res, err := h.service.Nearest(c.Request.Context(), ref, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	if res.Degraded {
		c.Header("X-Degraded-Result", "true")
	}
	c.JSON(http.StatusOK, res.Listings)
}

// GetByID handles GET /properties/:id requests
//
// @Summary      Get a property by id
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  models.Listing
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /properties/{id} [get]
func (h *PropertyHandler) GetByID(c *gin.Context) {
	listing, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Nearest handles GET /properties/nearest/:limit requests
//
// @Summary      Nearest properties
// @Description  Returns the limit listings closest to the caller, sorted ascending by distanceFromUser.
// @Tags         properties
// @Produce      json
// @Param        limit    path      int     true  "Number of listings to return (1-100)"
// @Param        userLat  query     number  true  "Caller latitude [-90,90]"
// @Param        userLng  query     number  true  "Caller longitude [-180,180]"
// @Success      200      {array}   models.RankedListing
// @Failure      400      {object}  map[string]string
// @Router       /properties/nearest/{limit} [get]
func (h *PropertyHandler) Nearest(c *gin.Context) {
	limit, err := strconv.Atoi(c.Param("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Limit must be between 1 and 100"})
		return
	}

	ref, ok := coordsFromQuery(c)
	if !ok {
		return
	}
	if ref == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userLat and userLng query parameters required and must be valid coordinates"})
		return
	}

	res, err := h.service.Nearest(c.Request.Context(), ref, &limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if res.Degraded {
		c.Header("X-Degraded-Result", "true")
	}
	c.JSON(http.StatusOK, res.Listings)
}

// Create handles POST /properties requests
//
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        property  body      CreatePropertyRequest  true  "New property"
// @Success      201       {object}  models.Listing
// @Failure      400       {object}  map[string]string
// @Router       /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	listing, err := h.service.Add(c.Request.Context(), models.NewListing{
		Title:    req.Title,
		Price:    req.Price,
		Kind:     models.ListingKind(req.Type),
		Address:  req.Location,
		Location: models.Coordinate{Latitude: *req.Lat, Longitude: *req.Lng},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// coordsFromQuery parses the optional userLat/userLng pair. Supplying exactly
// one of the two, or an unparsable value, is a bad request.
func coordsFromQuery(c *gin.Context) (*models.Coordinate, bool) {
	latStr := c.Query("userLat")
	lngStr := c.Query("userLng")

	if latStr == "" && lngStr == "" {
		return nil, true
	}
	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates. Must be valid latitude/longitude."})
		return nil, false
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates. Must be valid latitude/longitude."})
		return nil, false
	}

	return &models.Coordinate{Latitude: lat, Longitude: lng}, true
}

// respondError maps the service error taxonomy to HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.InvalidArgument:
		c.JSON(http.StatusBadRequest, gin.H{"error": errMessage(err)})
	case apperr.NotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": errMessage(err)})
	case apperr.Unavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errMessage(err)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func errMessage(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}
