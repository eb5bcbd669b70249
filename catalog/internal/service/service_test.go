package service_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
	"github.com/Astemirdum/catalog-service/catalog/internal/service"
	"github.com/Astemirdum/catalog-service/catalog/migrations"
	"github.com/Astemirdum/catalog-service/pkg/auth"
	"github.com/Astemirdum/catalog-service/pkg/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	mu     sync.Mutex
	events []model.Event
	err    error
}

func (r *recorder) Enqueue(_ context.Context, ev model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func (r *recorder) Close() error { return nil }

func (r *recorder) last() model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func newService(t *testing.T) (*service.Service, *recorder) {
	t.Helper()
	cfg := sqlite.Config{Path: filepath.Join(t.TempDir(), "catalog.db")}
	db, err := sqlite.NewSQLiteDB(context.Background(), cfg, migrations.SQLite())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := repository.NewRepository(db, zap.NewNop())
	require.NoError(t, err)
	rec := &recorder{}
	return service.NewService(repo, rec, zap.NewNop()), rec
}

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) *model.Date {
	v := model.NewDate(y, m, d)
	return &v
}

func TestService_CreateBook(t *testing.T) {
	t.Parallel()
	svc, rec := newService(t)
	ctx := auth.SetAuthContext(context.Background(), "librarian")

	author, err := svc.CreateAuthor(ctx, model.AuthorRequest{FirstName: "Isaac", LastName: "Asimov"})
	require.NoError(t, err)
	sf, err := svc.CreateGenre(ctx, model.GenreRequest{Name: "Science Fiction"})
	require.NoError(t, err)

	book, err := svc.CreateBook(ctx, model.BookRequest{
		Title:      "Foundation",
		Summary:    "Psychohistory",
		ISBN:       "9780553293357",
		AuthorID:   &author.ID,
		LanguageID: ptr(int64(77)),
		GenreIDs:   []int64{sf.ID, 999},
	})
	require.NoError(t, err)
	require.NotZero(t, book.ID)
	require.Equal(t, &author.ID, book.AuthorID)
	require.Nil(t, book.LanguageID, "unknown language is stored as null")
	require.Equal(t, []int64{sf.ID}, book.GenreIDs, "unknown genres are dropped")

	got, err := svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, book, got)

	ev := rec.last()
	require.Equal(t, "book", ev.Entity)
	require.Equal(t, model.ActionCreate, ev.Action)
	require.Equal(t, "librarian", ev.Actor)
}

func TestService_UpdateBookReplacesGenres(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	g1, err := svc.CreateGenre(ctx, model.GenreRequest{Name: "Fantasy"})
	require.NoError(t, err)
	g2, err := svc.CreateGenre(ctx, model.GenreRequest{Name: "Adventure"})
	require.NoError(t, err)

	book, err := svc.CreateBook(ctx, model.BookRequest{Title: "The Hobbit", GenreIDs: []int64{g1.ID}})
	require.NoError(t, err)

	book, err = svc.UpdateBook(ctx, book.ID, model.BookRequest{Title: "The Hobbit", GenreIDs: []int64{g2.ID}})
	require.NoError(t, err)
	require.Equal(t, []int64{g2.ID}, book.GenreIDs)

	book, err = svc.UpdateBook(ctx, book.ID, model.BookRequest{Title: "There and Back Again"})
	require.NoError(t, err)
	require.Equal(t, "There and Back Again", book.Title)
	require.Empty(t, book.GenreIDs)

	_, err = svc.UpdateBook(ctx, 12345, model.BookRequest{Title: "Ghost"})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_ConcurrentGenreReplace(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	var sets [][]int64
	for _, names := range [][]string{{"Mystery", "Crime"}, {"Thriller", "Noir"}} {
		var ids []int64
		for _, name := range names {
			g, err := svc.CreateGenre(ctx, model.GenreRequest{Name: name})
			require.NoError(t, err)
			ids = append(ids, g.ID)
		}
		sets = append(sets, ids)
	}
	book, err := svc.CreateBook(ctx, model.BookRequest{Title: "The Big Sleep"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, set := range sets {
		wg.Add(1)
		go func(set []int64) {
			defer wg.Done()
			_, err := svc.UpdateBook(ctx, book.ID, model.BookRequest{Title: "The Big Sleep", GenreIDs: set})
			assert.NoError(t, err)
		}(set)
	}
	wg.Wait()

	got, err := svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	// one writer wins entirely; sets never interleave
	require.Contains(t, sets, got.GenreIDs)
}

func TestService_Validation(t *testing.T) {
	t.Parallel()
	svc, rec := newService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		call  func() error
		field string
	}{
		{
			name: "author without last name",
			call: func() error {
				_, err := svc.CreateAuthor(ctx, model.AuthorRequest{FirstName: "Homer"})
				return err
			},
			field: "last_name",
		},
		{
			name: "author died before birth",
			call: func() error {
				_, err := svc.CreateAuthor(ctx, model.AuthorRequest{
					FirstName: "Mary", LastName: "Shelley",
					DateOfBirth: date(1851, time.February, 1), DateOfDeath: date(1797, time.August, 30),
				})
				return err
			},
			field: "date_of_death",
		},
		{
			name: "empty genre name",
			call: func() error {
				_, err := svc.CreateGenre(ctx, model.GenreRequest{})
				return err
			},
			field: "name",
		},
		{
			name: "unknown status",
			call: func() error {
				_, err := svc.CreateBookInstance(ctx, model.BookInstanceRequest{BookID: 1, Imprint: "x", Status: "Lost"})
				return err
			},
			field: "status",
		},
		{
			name: "adaptation without release date",
			call: func() error {
				_, err := svc.CreateAdaptation(ctx, model.AdaptationRequest{Title: "Frankenstein", MediaType: model.MediaFilm, BookID: 1})
				return err
			},
			field: "release_date",
		},
	}
	for _, tt := range tests {
		err := tt.call()
		require.ErrorIs(t, err, errs.ErrValidation, tt.name)
		var verr *errs.ValidationError
		require.True(t, errors.As(err, &verr), tt.name)
		require.Contains(t, verr.Fields, tt.field, tt.name)
	}
	require.Zero(t, rec.count(), "rejected requests publish nothing")
}

func TestService_BookInstanceLifecycle(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateBookInstance(ctx, model.BookInstanceRequest{BookID: 404, Imprint: "Penguin"})
	require.ErrorIs(t, err, errs.ErrNotFound)

	book, err := svc.CreateBook(ctx, model.BookRequest{Title: "Emma"})
	require.NoError(t, err)

	bi, err := svc.CreateBookInstance(ctx, model.BookInstanceRequest{
		BookID: book.ID, Imprint: "Penguin Classics, 2003", BorrowerID: ptr(int64(5)),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, bi.ID)
	require.Equal(t, model.StatusMaintenance, bi.Status)
	require.Nil(t, bi.BorrowerID, "unknown borrower is stored as null")

	bi, err = svc.UpdateBookInstance(ctx, bi.ID, model.BookInstanceRequest{
		BookID: book.ID, Imprint: "Penguin Classics, 2003", Status: model.StatusOnLoan,
		DueBack: date(2024, time.June, 1),
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusOnLoan, bi.Status)
	require.Equal(t, "2024-06-01", bi.DueBack.String())

	_, err = svc.GetBookInstance(ctx, uuid.New())
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, svc.DeleteBook(ctx, book.ID))
	_, err = svc.GetBookInstance(ctx, bi.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_DeleteAuthorNullifiesBooks(t *testing.T) {
	t.Parallel()
	svc, rec := newService(t)
	ctx := context.Background()

	author, err := svc.CreateAuthor(ctx, model.AuthorRequest{FirstName: "Jane", LastName: "Austen"})
	require.NoError(t, err)
	book, err := svc.CreateBook(ctx, model.BookRequest{Title: "Persuasion", AuthorID: &author.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAuthor(ctx, author.ID))
	require.Equal(t, model.ActionDelete, rec.last().Action)

	got, err := svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Nil(t, got.AuthorID)

	require.ErrorIs(t, svc.DeleteAuthor(ctx, author.ID), errs.ErrNotFound)
}

func TestService_Adaptation(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	author, err := svc.CreateAuthor(ctx, model.AuthorRequest{FirstName: "Frank", LastName: "Herbert"})
	require.NoError(t, err)
	book, err := svc.CreateBook(ctx, model.BookRequest{Title: "Dune"})
	require.NoError(t, err)

	a, err := svc.CreateAdaptation(ctx, model.AdaptationRequest{
		Title: "Dune", MediaType: model.MediaFilm, ReleaseDate: date(1984, time.December, 14),
		BookID: book.ID, CreatorIDs: []int64{author.ID, 31337},
	})
	require.NoError(t, err)
	require.Equal(t, []int64{author.ID}, a.CreatorIDs)
	require.Equal(t, "1984-12-14", a.ReleaseDate.String())

	list, err := svc.ListAdaptations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, a, list[0])

	_, err = svc.CreateAdaptation(ctx, model.AdaptationRequest{
		Title: "Dune", MediaType: model.MediaTV, ReleaseDate: date(2000, time.December, 3), BookID: 999,
	})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_DuplicateLanguage(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateLanguage(ctx, model.LanguageRequest{Name: "Esperanto"})
	require.NoError(t, err)
	_, err = svc.CreateLanguage(ctx, model.LanguageRequest{Name: "esperanto"})
	require.ErrorIs(t, err, errs.ErrConstraint)

	languages, err := svc.ListLanguages(ctx)
	require.NoError(t, err)
	require.Len(t, languages, 1)
}

func TestService_PublishFailureKeepsChange(t *testing.T) {
	t.Parallel()
	svc, rec := newService(t)
	rec.err = errors.New("broker down")
	ctx := context.Background()

	g, err := svc.CreateGenre(ctx, model.GenreRequest{Name: "Western"})
	require.NoError(t, err)
	got, err := svc.GetGenre(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, "Western", got.Name)
}

func TestService_Tokens(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	token, err := svc.IssueToken(ctx, "librarian")
	require.NoError(t, err)
	require.Len(t, token, 40)

	p, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "librarian", p.Username)

	_, err = svc.Authenticate(ctx, "deadbeef")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = svc.Authenticate(ctx, "")
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	require.NoError(t, svc.RevokeToken(ctx, token))
	_, err = svc.Authenticate(ctx, token)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = svc.IssueToken(ctx, "")
	require.ErrorIs(t, err, errs.ErrValidation)
}
