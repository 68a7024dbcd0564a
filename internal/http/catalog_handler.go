package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/i18n"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/service"
)

// CatalogHandler provides HTTP handlers for the customization catalog.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListSteps handles GET /api/catalog/steps requests.
//
// @Summary      List customization steps
// @Description  Returns the wizard's customization steps in display order, each with the active options a customer may pick. Inactive options are hidden here but still resolve for previously saved dishes.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Ordered steps with options"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - catalog unreachable"
// @Router       /api/catalog/steps [get]
func (h *CatalogHandler) ListSteps(c *gin.Context) {
	builder := NewResponseBuilder(c)

	steps, err := h.catalogService.StepsWithOptions(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	builder.SuccessOK(steps)
}
