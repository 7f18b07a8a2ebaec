package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mistgo/inventory-api/internal/api/metrics"
	"github.com/mistgo/inventory-api/internal/core/domain"
	"github.com/mistgo/inventory-api/internal/core/ports"
)

// ItemHandler handles HTTP requests for item operations. Every route runs
// behind the Auth middleware; the owner id always comes from the verified
// token, never from the request body.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func toItemResponse(item *domain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Quantity:    item.Quantity,
		CreatedAt:   item.CreatedAt,
	}
}

// itemID parses the :id path parameter. An unparsable id can never name an
// existing item, so it maps to the same 404 as a missing one.
func itemID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrItemNotFound
	}
	return id, nil
}

// List handles GET /api/items.
//
// @Summary      List the caller's items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   itemResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	resp := make([]itemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toItemResponse(item))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/items/:id.
//
// @Summary      Get one item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Item id"
// @Success      200  {object}  itemResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := itemID(c)
	if err != nil {
		return err
	}

	item, err := h.service.Get(c.Request().Context(), id, ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// Create handles POST /api/items.
//
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      itemRequest  true  "Item details"
// @Success      201   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	item, err := h.service.Create(c.Request().Context(), ownerID, ports.ItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return err
	}

	metrics.ItemsCreatedTotal.Inc()

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/items/%d", item.ID))
	return c.JSON(http.StatusCreated, toItemResponse(item))
}

// Update handles PUT /api/items/:id (full replace).
//
// @Summary      Replace an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Item id"
// @Param        body  body      itemRequest  true  "Item details"
// @Success      200   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := itemID(c)
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	item, err := h.service.Update(c.Request().Context(), id, ownerID, ports.ItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// Delete handles DELETE /api/items/:id.
//
// @Summary      Delete an item
// @Tags         items
// @Security     BearerAuth
// @Param        id  path  int  true  "Item id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := itemID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, ownerID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
