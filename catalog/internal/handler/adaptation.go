package handler

import (
	"net/http"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateAdaptation(c echo.Context) error {
	var req model.AdaptationRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	out, err := h.catalogSvc.CreateAdaptation(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListAdaptations(c echo.Context) error {
	out, err := h.catalogSvc.ListAdaptations(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetAdaptation(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	out, err := h.catalogSvc.GetAdaptation(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) UpdateAdaptation(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	var req model.AdaptationRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	out, err := h.catalogSvc.UpdateAdaptation(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteAdaptation(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteAdaptation(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return deleted(c)
}
