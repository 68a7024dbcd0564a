package http

import (
	"github.com/gin-gonic/gin"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/middleware"
)

// DishRoutes handles dish and catalog route registration.
type DishRoutes struct {
	handler        *Handler
	catalogHandler *CatalogHandler
	guard          *middleware.InFlightGuard
}

// NewDishRoutes creates a new DishRoutes instance.
func NewDishRoutes(handler *Handler, catalogHandler *CatalogHandler) *DishRoutes {
	return &DishRoutes{
		handler:        handler,
		catalogHandler: catalogHandler,
		guard:          middleware.NewInFlightGuard(),
	}
}

// RegisterPublicRoutes registers customer-facing routes. Mutations of a
// persisted dish run behind the per-dish in-flight guard so concurrent
// edits of the same dish are rejected rather than interleaved.
func (r *DishRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/steps", r.catalogHandler.ListSteps)

	rg.POST("/dishes/preview", r.handler.PreviewDish)
	rg.GET("/dishes/:dishID", r.handler.GetDish)
	rg.PUT("/dishes/:dishID", r.guard.Guard(), r.handler.UpdateDish)
	rg.PATCH("/dishes/:dishID/picks", r.guard.Guard(), r.handler.MutatePick)

	rg.POST("/orders/:orderID/dishes", r.handler.ComposeDish)
	rg.GET("/orders/:orderID/dishes", r.handler.ListOrderDishes)
}

// RegisterProtectedRoutes registers staff-only routes behind JWT auth.
func (r *DishRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.POST("/catalog/refresh", r.refreshCatalog(cfg))
}

// refreshCatalog drops the cached catalog snapshot so menu edits made in
// the staff dashboard become visible without waiting for the TTL.
func (r *DishRoutes) refreshCatalog(cfg *RouterConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.CatalogService != nil {
			cfg.CatalogService.Invalidate()
		}
		NewResponseBuilder(c).SuccessOK(gin.H{"refreshed": true})
	}
}
