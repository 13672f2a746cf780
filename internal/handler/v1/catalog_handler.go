package v1

import (
	"github.com/clinicbook/api/internal/service"
	"github.com/clinicbook/api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog      *service.CatalogService
	availability *service.AvailabilityService
	collector    *metrics.Collector
}

func NewCatalogHandler(catalog *service.CatalogService, availability *service.AvailabilityService, collector *metrics.Collector) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, availability: availability, collector: collector}
}

// ListTreatments returns the name-only projection used by booking pickers.
// GET /api/v1/treatments
func (h *CatalogHandler) ListTreatments(c *gin.Context) {
	names, err := h.catalog.ListTreatmentNames(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, names)
}

// Availability returns, per treatment, the slots still open on the requested
// day. The date query parameter is required.
// GET /api/v1/availability?date=...
func (h *CatalogHandler) Availability(c *gin.Context) {
	result, err := h.availability.Availability(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.collector.AvailabilityQueries.Inc()
	respondOK(c, result)
}
