package handler

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/service"
	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int64, req model.AuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error

	CreateGenre(ctx context.Context, req model.GenreRequest) (model.Genre, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)
	GetGenre(ctx context.Context, id int64) (model.Genre, error)
	UpdateGenre(ctx context.Context, id int64, req model.GenreRequest) (model.Genre, error)
	DeleteGenre(ctx context.Context, id int64) error

	CreateLanguage(ctx context.Context, req model.LanguageRequest) (model.Language, error)
	ListLanguages(ctx context.Context) ([]model.Language, error)
	GetLanguage(ctx context.Context, id int64) (model.Language, error)
	UpdateLanguage(ctx context.Context, id int64, req model.LanguageRequest) (model.Language, error)
	DeleteLanguage(ctx context.Context, id int64) error

	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, req model.BookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	CreateBookInstance(ctx context.Context, req model.BookInstanceRequest) (model.BookInstance, error)
	ListBookInstances(ctx context.Context) ([]model.BookInstance, error)
	GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error)
	UpdateBookInstance(ctx context.Context, id uuid.UUID, req model.BookInstanceRequest) (model.BookInstance, error)
	DeleteBookInstance(ctx context.Context, id uuid.UUID) error

	CreateAdaptation(ctx context.Context, req model.AdaptationRequest) (model.Adaptation, error)
	ListAdaptations(ctx context.Context) ([]model.Adaptation, error)
	GetAdaptation(ctx context.Context, id int64) (model.Adaptation, error)
	UpdateAdaptation(ctx context.Context, id int64, req model.AdaptationRequest) (model.Adaptation, error)
	DeleteAdaptation(ctx context.Context, id int64) error

	Authenticate(ctx context.Context, token string) (model.Principal, error)
}

var _ CatalogService = (*service.Service)(nil)
