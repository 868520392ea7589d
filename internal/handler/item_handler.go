package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tasklist/internal/errors"
	"tasklist/internal/model"
	"tasklist/internal/service"
)

// ItemHandler bundles the guarded item endpoints.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func itemID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// ListItems godoc
// @Summary List all items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Item
// @Failure 401 {object} errors.ErrorResponse
// @Router /items [get]
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.itemService.ListItems(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, items)
}

// GetItem godoc
// @Summary Get item by id
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} model.Item
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}
	item, err := h.itemService.GetItem(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, item)
}

// CreateItem godoc
// @Summary Create an item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body model.Item true "Item payload"
// @Success 201 {object} model.Item
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /items [post]
func (h *ItemHandler) CreateItem(c echo.Context) error {
	var item model.Item
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	created, err := h.itemService.CreateItem(c.Request().Context(), &item)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/items/%d", created.ID))
	return c.JSON(http.StatusCreated, created)
}

// UpdateItem godoc
// @Summary Update an item's name and completion state
// @Tags items
// @Accept json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param item body model.Item true "Item payload"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [put]
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}
	var input model.Item
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.itemService.UpdateItem(c.Request().Context(), id, &input); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteItem godoc
// @Summary Delete an item
// @Tags items
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}
	if err := h.itemService.DeleteItem(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
