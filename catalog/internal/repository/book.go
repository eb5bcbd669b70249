package repository

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
)

const (
	booksTableName      = `books`
	bookGenresTableName = `book_genres`
)

var bookColumns = []string{"id", "title", "summary", "isbn", "language_id", "author_id"}

func (q *querier) InsertBook(ctx context.Context, b model.Book) (int64, error) {
	return q.insertReturningID(ctx, "InsertBook",
		q.qb.Insert(booksTableName).
			Columns("title", "summary", "isbn", "language_id", "author_id").
			Values(b.Title, b.Summary, b.ISBN, int64Arg(b.LanguageID), int64Arg(b.AuthorID)))
}

// GetBook returns scalar and foreign-key fields only; genre ids come from BookGenreIDs.
func (q *querier) GetBook(ctx context.Context, id int64) (model.Book, error) {
	var b model.Book
	err := q.get(ctx, "GetBook", &b,
		q.qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return model.Book{}, notFound(err, "book %d", id)
	}
	return b, nil
}

func (q *querier) ListBooks(ctx context.Context) ([]model.Book, error) {
	books := []model.Book{}
	err := q.list(ctx, "ListBooks", &books,
		q.qb.Select(bookColumns...).From(booksTableName).OrderBy("id"))
	return books, err
}

func (q *querier) UpdateBook(ctx context.Context, b model.Book) error {
	err := q.exec(ctx, "UpdateBook",
		q.qb.Update(booksTableName).
			SetMap(map[string]any{
				"title":       b.Title,
				"summary":     b.Summary,
				"isbn":        b.ISBN,
				"language_id": int64Arg(b.LanguageID),
				"author_id":   int64Arg(b.AuthorID),
			}).
			Where(sq.Eq{"id": b.ID}))
	return notFound(err, "book %d", b.ID)
}

// DeleteBook cascades to instances, adaptations and genre links.
func (q *querier) DeleteBook(ctx context.Context, id int64) error {
	err := q.exec(ctx, "DeleteBook", q.qb.Delete(booksTableName).Where(sq.Eq{"id": id}))
	return notFound(err, "book %d", id)
}

func (q *querier) BookExists(ctx context.Context, id int64) (bool, error) {
	return q.exists(ctx, booksTableName, id)
}

func (q *querier) SetBookGenres(ctx context.Context, bookID int64, genreIDs []int64) error {
	return q.replaceLinks(ctx, bookGenresTableName, "book_id", "genre_id", genresTableName, bookID, genreIDs)
}

func (q *querier) BookGenreIDs(ctx context.Context, bookIDs ...int64) (map[int64][]int64, error) {
	return q.linkIDs(ctx, bookGenresTableName, "book_id", "genre_id", bookIDs)
}
