package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/handler"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/pkg/auth"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/catalog-service/catalog/internal/handler/mocks"
)

const validToken = "0123456789abcdef0123456789abcdef01234567"

func allowToken(r *service_mocks.MockCatalogService) {
	r.EXPECT().
		Authenticate(gomock.Any(), validToken).
		Return(model.Principal{ID: 1, Username: "librarian"}, nil)
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockCatalogService)

	tests := []struct {
		name         string
		token        string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name:  "ok",
			token: "Bearer " + validToken,
			body:  `{"title":"Dune","genre_ids":[1,2]}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				allowToken(r)
				r.EXPECT().
					CreateBook(gomock.Any(), model.BookRequest{Title: "Dune", GenreIDs: []int64{1, 2}}).
					DoAndReturn(func(ctx context.Context, req model.BookRequest) (model.Book, error) {
						userName, err := auth.GetUserName(ctx)
						require.NoError(t, err)
						require.Equal(t, "librarian", userName)
						return model.Book{ID: 1, Title: "Dune", GenreIDs: []int64{1, 2}}, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"title":"Dune","summary":"","isbn":"","language_id":null,"author_id":null,"genre_ids":[1,2]}`,
		},
		{
			name:         "err. missing token",
			body:         `{"title":"Dune","genre_ids":[1,2]}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"no Authorization header"}`,
		},
		{
			name:         "err. not a bearer token",
			token:        "Basic bGlicmFyaWFuOnNlY3JldA==",
			body:         `{"title":"Dune"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"invalid Authorization header"}`,
		},
		{
			name:  "err. unknown token",
			token: "Bearer nope",
			body:  `{"title":"Dune","genre_ids":[1,2]}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					Authenticate(gomock.Any(), "nope").
					Return(model.Principal{}, errs.ErrUnauthorized)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"invalid token"}`,
		},
		{
			name:         "err. unknown field",
			token:        "Bearer " + validToken,
			body:         `{"title":"Dune","publisher":"Chilton"}`,
			mockBehavior: allowToken,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid request body"}`,
		},
		{
			name:  "err. validation",
			token: "Bearer " + validToken,
			body:  `{"summary":"untitled"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				allowToken(r)
				r.EXPECT().
					CreateBook(gomock.Any(), model.BookRequest{Summary: "untitled"}).
					Return(model.Book{}, errs.NewValidationError("title", "required"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid title: required"}`,
		},
		{
			name:  "err. internal",
			token: "Bearer " + validToken,
			body:  `{"title":"Dune"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				allowToken(r)
				r.EXPECT().
					CreateBook(gomock.Any(), model.BookRequest{Title: "Dune"}).
					Return(model.Book{}, errors.New("db internal"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal Server Error"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			h := handler.New(svc, zap.NewNop())
			e := h.NewRouter()

			r := httptest.NewRequest(http.MethodPost, "/books/", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.token != "" {
				r.Header.Set(echo.HeaderAuthorization, tt.token)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetBookInstance(t *testing.T) {
	t.Parallel()
	known := uuid.MustParse("f7cdc58f-2caf-4b15-9727-f89dcc629b27")
	unknown := uuid.MustParse("83575e12-7ce0-48ee-9931-51919ff3c9ee")
	type mockBehavior func(r *service_mocks.MockCatalogService)

	tests := []struct {
		name         string
		path         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			path: "/bookinstances/" + known.String(),
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					GetBookInstance(gomock.Any(), known).
					Return(model.BookInstance{
						ID: known, BookID: 3, Imprint: "Ace, 1965", Status: model.StatusAvailable,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","book_id":3,"imprint":"Ace, 1965","due_back":null,"status":"Available","borrower_id":null}`,
		},
		{
			name: "err. unknown id",
			path: "/bookinstances/" + unknown.String(),
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					GetBookInstance(gomock.Any(), unknown).
					Return(model.BookInstance{}, errors.Wrapf(errs.ErrNotFound, "book instance %s", unknown))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"book instance 83575e12-7ce0-48ee-9931-51919ff3c9ee: not found"}`,
		},
		{
			name:         "err. malformed id",
			path:         "/bookinstances/42",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"id is invalid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			e := handler.New(svc, zap.NewNop()).NewRouter()

			r := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockCatalogService)

	tests := []struct {
		name         string
		path         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			path: "/authors/7/",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				allowToken(r)
				r.EXPECT().DeleteAuthor(gomock.Any(), int64(7)).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true}`,
		},
		{
			name: "err. not found",
			path: "/genres/9",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				allowToken(r)
				r.EXPECT().DeleteGenre(gomock.Any(), int64(9)).Return(errors.Wrapf(errs.ErrNotFound, "genre %d", 9))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"genre 9: not found"}`,
		},
		{
			name:         "err. bad id",
			path:         "/adaptations/abc",
			mockBehavior: allowToken,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"id is invalid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			e := handler.New(svc, zap.NewNop()).NewRouter()

			r := httptest.NewRequest(http.MethodDelete, tt.path, http.NoBody)
			r.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Conflict(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCatalogService(c)
	e := handler.New(svc, zap.NewNop()).NewRouter()

	allowToken(svc)
	svc.EXPECT().
		UpdateLanguage(gomock.Any(), int64(2), model.LanguageRequest{Name: "english"}).
		Return(model.Language{}, errors.Wrap(errs.ErrConstraint, "UpdateLanguage"))

	r := httptest.NewRequest(http.MethodPut, "/languages/2", strings.NewReader(`{"name":"english"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	r.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, `{"message":"request conflicts with stored data"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ReadsAreOpen(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCatalogService(c)
	e := handler.New(svc, zap.NewNop()).NewRouter()

	svc.EXPECT().ListGenres(gomock.Any()).Return([]model.Genre{}, nil)

	r := httptest.NewRequest(http.MethodGet, "/genres/", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[]`, strings.Trim(w.Body.String(), "\n"))
}
