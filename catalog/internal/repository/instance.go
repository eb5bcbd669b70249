package repository

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const bookInstancesTableName = `book_instances`

var bookInstanceColumns = []string{"id", "book_id", "imprint", "due_back", "status", "borrower_id"}

func (q *querier) InsertBookInstance(ctx context.Context, bi model.BookInstance) error {
	return q.exec(ctx, "InsertBookInstance",
		q.qb.Insert(bookInstancesTableName).
			Columns(bookInstanceColumns...).
			Values(bi.ID.String(), bi.BookID, bi.Imprint, dateArg(bi.DueBack), string(bi.Status), int64Arg(bi.BorrowerID)))
}

func (q *querier) GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error) {
	var bi model.BookInstance
	err := q.get(ctx, "GetBookInstance", &bi,
		q.qb.Select(bookInstanceColumns...).From(bookInstancesTableName).Where(sq.Eq{"id": id.String()}))
	if err != nil {
		return model.BookInstance{}, notFound(err, "book instance %s", id)
	}
	return bi, nil
}

func (q *querier) ListBookInstances(ctx context.Context) ([]model.BookInstance, error) {
	instances := []model.BookInstance{}
	err := q.list(ctx, "ListBookInstances", &instances,
		q.qb.Select(bookInstanceColumns...).From(bookInstancesTableName).OrderBy("book_id", "id"))
	return instances, err
}

// UpdateBookInstance never writes the id column; ids are fixed at insert.
func (q *querier) UpdateBookInstance(ctx context.Context, bi model.BookInstance) error {
	err := q.exec(ctx, "UpdateBookInstance",
		q.qb.Update(bookInstancesTableName).
			SetMap(map[string]any{
				"book_id":     bi.BookID,
				"imprint":     bi.Imprint,
				"due_back":    dateArg(bi.DueBack),
				"status":      string(bi.Status),
				"borrower_id": int64Arg(bi.BorrowerID),
			}).
			Where(sq.Eq{"id": bi.ID.String()}))
	return notFound(err, "book instance %s", bi.ID)
}

func (q *querier) DeleteBookInstance(ctx context.Context, id uuid.UUID) error {
	err := q.exec(ctx, "DeleteBookInstance",
		q.qb.Delete(bookInstancesTableName).Where(sq.Eq{"id": id.String()}))
	return notFound(err, "book instance %s", id)
}
