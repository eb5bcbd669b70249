package handler

import (
	"net/http"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.AuthorRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	out, err := h.catalogSvc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListAuthors(c echo.Context) error {
	out, err := h.catalogSvc.ListAuthors(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	out, err := h.catalogSvc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	var req model.AuthorRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	out, err := h.catalogSvc.UpdateAuthor(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return deleted(c)
}
