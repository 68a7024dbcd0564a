package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/dto"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/model"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/i18n"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/middleware"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/repository"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/service"
)

// Handler provides HTTP handlers for dish composition routes.
type Handler struct {
	dishService    service.DishService
	cartService    service.CartService
	loggingService service.LoggingService
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLoggingService enables persisted audit entries for domain actions.
func WithLoggingService(ls service.LoggingService) HandlerOption {
	return func(h *Handler) {
		h.loggingService = ls
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(dishService service.DishService, cartService service.CartService, opts ...HandlerOption) *Handler {
	h := &Handler{
		dishService: dishService,
		cartService: cartService,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// audit persists a domain action entry without blocking the response.
func (h *Handler) audit(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if h.loggingService == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      "info",
		Message:    message,
		RequestID:  middleware.GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		ActionType: actionType,
		Fields:     fields,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.loggingService.CreateLog(ctx, entry)
	}()
}

// respondError maps service errors onto HTTP statuses and translated messages.
func (h *Handler) respondError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, dto.ErrEmptyComposition):
		builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyEmptyComposition, err)
	case errors.Is(err, dto.ErrInvalidPickTarget), errors.Is(err, dto.ErrInvalidQuantity):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidPickTarget, err)
	case errors.Is(err, repository.ErrDishNotFound), errors.Is(err, repository.ErrInvalidDishID):
		builder.Error(http.StatusNotFound, i18n.ErrKeyDishNotFound, err)
	default:
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, vErr.Error(), err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// ComposeDish handles POST /api/orders/{orderID}/dishes requests.
//
// @Summary      Compose a custom dish
// @Description  Validates and stores a freshly composed custom dish on an order. The body carries only step, item, and quantity identities; names, prices, and calories are re-derived from the catalog. A submission without any picked ingredient is rejected.
// @Tags         Dishes
// @Accept       json
// @Produce      json
// @Param        orderID path string true "Order identifier"
// @Param        request body dto.ComposeDishRequest true "Dish composition"
// @Success      201 {object} dto.SuccessResponse "Dish created"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - no ingredient picked"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/orders/{orderID}/dishes [post]
func (h *Handler) ComposeDish(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ComposeDishRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	orderID := c.Param("orderID")
	dish, totals, err := h.dishService.ComposeDish(c.Request.Context(), orderID, *req)
	if err != nil {
		h.respondError(builder, err)
		return
	}

	h.audit(c, "compose_dish", "Custom dish composed", map[string]interface{}{
		"order_id": orderID,
		"dish_id":  dish.ID.Hex(),
	})

	builder.SuccessCreated(dto.DishResponse{Dish: dish, Totals: totals})
}

// ListOrderDishes handles GET /api/orders/{orderID}/dishes requests.
//
// @Summary      List dishes on an order
// @Description  Returns every dish on the order in the nested step shape with derived totals.
// @Tags         Dishes
// @Produce      json
// @Param        orderID path string true "Order identifier"
// @Success      200 {object} dto.SuccessResponse "Dishes"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/orders/{orderID}/dishes [get]
func (h *Handler) ListOrderDishes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	dishes, err := h.dishService.ListOrderDishes(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		h.respondError(builder, err)
		return
	}

	builder.SuccessOK(dishes)
}

// GetDish handles GET /api/dishes/{dishID} requests.
//
// @Summary      Get a dish
// @Description  Returns the dish in the nested step shape together with its derived price and calorie totals. Dishes stored in the older flat shape are decoded transparently.
// @Tags         Dishes
// @Produce      json
// @Param        dishID path string true "Dish identifier"
// @Success      200 {object} dto.SuccessResponse "Dish with totals"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown dish"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/dishes/{dishID} [get]
func (h *Handler) GetDish(c *gin.Context) {
	builder := NewResponseBuilder(c)

	dish, totals, err := h.dishService.GetDish(c.Request.Context(), c.Param(middleware.DishIDParam))
	if err != nil {
		h.respondError(builder, err)
		return
	}

	builder.SuccessOK(dto.DishResponse{Dish: dish, Totals: totals})
}

// UpdateDish handles PUT /api/dishes/{dishID} requests.
//
// @Summary      Replace a dish's composition
// @Description  Re-submits an edited composition for an existing dish. The stored composition is replaced wholesale; the custom-dish flag is never modified on this path.
// @Tags         Dishes
// @Accept       json
// @Produce      json
// @Param        dishID path string true "Dish identifier"
// @Param        request body dto.UpdateDishRequest true "Edited composition"
// @Success      200 {object} dto.SuccessResponse "Updated dish"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown dish"
// @Failure      409 {object} dto.ErrorResponse "Conflict - another mutation in flight"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - no ingredient picked"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/dishes/{dishID} [put]
func (h *Handler) UpdateDish(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateDishRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	dishID := c.Param(middleware.DishIDParam)
	dish, totals, err := h.dishService.UpdateDish(c.Request.Context(), dishID, *req)
	if err != nil {
		h.respondError(builder, err)
		return
	}

	h.audit(c, "update_dish", "Dish composition replaced", map[string]interface{}{
		"dish_id": dishID,
	})

	builder.SuccessOK(dto.DishResponse{Dish: dish, Totals: totals})
}

// MutatePick handles PATCH /api/dishes/{dishID}/picks requests.
//
// @Summary      Change one ingredient quantity
// @Description  Sets the quantity of a single ingredient on a placed dish. Zero or below removes the ingredient; a positive quantity on an ingredient the dish does not carry inserts it. A change that would leave the dish empty is rejected without writing.
// @Tags         Dishes
// @Accept       json
// @Produce      json
// @Param        dishID path string true "Dish identifier"
// @Param        request body dto.MutatePickRequest true "Pick mutation"
// @Success      200 {object} dto.SuccessResponse "Mutated dish"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid pick target"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown dish"
// @Failure      409 {object} dto.ErrorResponse "Conflict - another mutation in flight"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - would empty the dish"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/dishes/{dishID}/picks [patch]
func (h *Handler) MutatePick(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.MutatePickRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	dishID := c.Param(middleware.DishIDParam)
	dish, totals, err := h.cartService.ChangePickQuantity(c.Request.Context(), dishID, *req)
	if err != nil {
		h.respondError(builder, err)
		return
	}

	h.audit(c, "mutate_pick", "Pick quantity changed", map[string]interface{}{
		"dish_id":   dishID,
		"step_id":   req.StepID,
		"option_id": req.OptionID,
		"quantity":  req.Quantity,
	})

	builder.SuccessOK(dto.DishResponse{Dish: dish, Totals: totals})
}

// PreviewDish handles POST /api/dishes/preview requests.
//
// @Summary      Preview totals for a composition
// @Description  Derives price and calorie totals plus per-step summaries for a composition that has not been saved. Used by the wizard for live feedback while the customer picks ingredients.
// @Tags         Dishes
// @Accept       json
// @Produce      json
// @Param        request body dto.ComposeDishRequest true "Composition to price"
// @Success      200 {object} dto.SuccessResponse "Derived totals"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - catalog unreachable"
// @Router       /api/dishes/preview [post]
func (h *Handler) PreviewDish(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ComposeDishRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	totals, summaries, err := h.dishService.Preview(c.Request.Context(), req.Selections)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	builder.SuccessOK(dto.PreviewResponse{Totals: totals, Summaries: summaries})
}
