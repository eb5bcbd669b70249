package repository

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
)

const authorsTableName = `authors`

var authorColumns = []string{"id", "first_name", "last_name", "date_of_birth", "date_of_death"}

func (q *querier) InsertAuthor(ctx context.Context, a model.Author) (int64, error) {
	return q.insertReturningID(ctx, "InsertAuthor",
		q.qb.Insert(authorsTableName).
			Columns("first_name", "last_name", "date_of_birth", "date_of_death").
			Values(a.FirstName, a.LastName, dateArg(a.DateOfBirth), dateArg(a.DateOfDeath)))
}

func (q *querier) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	var a model.Author
	err := q.get(ctx, "GetAuthor", &a,
		q.qb.Select(authorColumns...).From(authorsTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return model.Author{}, notFound(err, "author %d", id)
	}
	return a, nil
}

func (q *querier) ListAuthors(ctx context.Context) ([]model.Author, error) {
	authors := []model.Author{}
	err := q.list(ctx, "ListAuthors", &authors,
		q.qb.Select(authorColumns...).From(authorsTableName).OrderBy("id"))
	return authors, err
}

func (q *querier) UpdateAuthor(ctx context.Context, a model.Author) error {
	err := q.exec(ctx, "UpdateAuthor",
		q.qb.Update(authorsTableName).
			SetMap(map[string]any{
				"first_name":    a.FirstName,
				"last_name":     a.LastName,
				"date_of_birth": dateArg(a.DateOfBirth),
				"date_of_death": dateArg(a.DateOfDeath),
			}).
			Where(sq.Eq{"id": a.ID}))
	return notFound(err, "author %d", a.ID)
}

// DeleteAuthor relies on the schema: books.author_id is set to null and
// the author leaves every adaptation creator set.
func (q *querier) DeleteAuthor(ctx context.Context, id int64) error {
	err := q.exec(ctx, "DeleteAuthor", q.qb.Delete(authorsTableName).Where(sq.Eq{"id": id}))
	return notFound(err, "author %d", id)
}

func (q *querier) AuthorExists(ctx context.Context, id int64) (bool, error) {
	return q.exists(ctx, authorsTableName, id)
}
