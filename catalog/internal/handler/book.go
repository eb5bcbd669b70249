package handler

import (
	"net/http"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	out, err := h.catalogSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListBooks(c echo.Context) error {
	out, err := h.catalogSvc.ListBooks(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	out, err := h.catalogSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	out, err := h.catalogSvc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return deleted(c)
}
