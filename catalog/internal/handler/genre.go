package handler

import (
	"net/http"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateGenre(c echo.Context) error {
	var req model.GenreRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	out, err := h.catalogSvc.CreateGenre(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListGenres(c echo.Context) error {
	out, err := h.catalogSvc.ListGenres(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetGenre(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	out, err := h.catalogSvc.GetGenre(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) UpdateGenre(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	var req model.GenreRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	out, err := h.catalogSvc.UpdateGenre(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteGenre(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteGenre(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return deleted(c)
}

func (h *Handler) CreateLanguage(c echo.Context) error {
	var req model.LanguageRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	out, err := h.catalogSvc.CreateLanguage(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ListLanguages(c echo.Context) error {
	out, err := h.catalogSvc.ListLanguages(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetLanguage(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	out, err := h.catalogSvc.GetLanguage(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) UpdateLanguage(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	var req model.LanguageRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	out, err := h.catalogSvc.UpdateLanguage(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) DeleteLanguage(c echo.Context) error {
	id, err := intID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteLanguage(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return deleted(c)
}
