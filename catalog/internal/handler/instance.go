package handler

import (
	"net/http"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateBookInstance(c echo.Context) error {
	var req model.BookInstanceRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	out, err := h.catalogSvc.CreateBookInstance(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListBookInstances(c echo.Context) error {
	out, err := h.catalogSvc.ListBookInstances(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetBookInstance(c echo.Context) error {
	id, err := uuidID(c)
	if err != nil {
		return err
	}
	out, err := h.catalogSvc.GetBookInstance(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) UpdateBookInstance(c echo.Context) error {
	id, err := uuidID(c)
	if err != nil {
		return err
	}
	var req model.BookInstanceRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	out, err := h.catalogSvc.UpdateBookInstance(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteBookInstance(c echo.Context) error {
	id, err := uuidID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteBookInstance(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return deleted(c)
}
