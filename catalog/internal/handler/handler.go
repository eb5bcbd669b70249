package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	md "github.com/Astemirdum/catalog-service/pkg/middleware"
	"github.com/Astemirdum/catalog-service/pkg/serializer"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	catalogSvc CatalogService
	log        *zap.Logger
}

func New(catalogSvc CatalogService, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.JSONSerializer = serializer.JSONSerializer{}

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	authMW := md.BearerAuth(h.authenticate, h.log)

	h.route(api, authMW, "/authors", h.CreateAuthor, h.ListAuthors, h.GetAuthor, h.UpdateAuthor, h.DeleteAuthor)
	h.route(api, authMW, "/genres", h.CreateGenre, h.ListGenres, h.GetGenre, h.UpdateGenre, h.DeleteGenre)
	h.route(api, authMW, "/languages", h.CreateLanguage, h.ListLanguages, h.GetLanguage, h.UpdateLanguage, h.DeleteLanguage)
	h.route(api, authMW, "/books", h.CreateBook, h.ListBooks, h.GetBook, h.UpdateBook, h.DeleteBook)
	h.route(api, authMW, "/bookinstances",
		h.CreateBookInstance, h.ListBookInstances, h.GetBookInstance, h.UpdateBookInstance, h.DeleteBookInstance)
	h.route(api, authMW, "/adaptations",
		h.CreateAdaptation, h.ListAdaptations, h.GetAdaptation, h.UpdateAdaptation, h.DeleteAdaptation)

	return e
}

// route mounts the five CRUD endpoints of one entity; writes need a bearer token.
func (h *Handler) route(g *echo.Group, authMW echo.MiddlewareFunc, prefix string, create, list, get, update, del echo.HandlerFunc) {
	g.GET(prefix, list)
	g.GET(prefix+"/:id", get)
	g.POST(prefix, create, authMW)
	g.PUT(prefix+"/:id", update, authMW)
	g.DELETE(prefix+"/:id", del, authMW)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) authenticate(ctx context.Context, token string) (string, error) {
	p, err := h.catalogSvc.Authenticate(ctx, token)
	if err != nil {
		return "", err
	}
	return p.Username, nil
}

// httpError maps service errors onto statuses. Store details never reach the client.
func (h *Handler) httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConstraint):
		return echo.NewHTTPError(http.StatusConflict, "request conflicts with stored data")
	case errors.Is(err, errs.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		h.log.Error("internal", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func intID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func uuidID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func deleted(c echo.Context) error {
	return c.JSON(http.StatusOK, model.DeleteResponse{Success: true})
}
