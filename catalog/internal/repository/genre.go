package repository

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
)

const (
	genresTableName    = `genres`
	languagesTableName = `languages`
)

func (q *querier) InsertGenre(ctx context.Context, g model.Genre) (int64, error) {
	return q.insertReturningID(ctx, "InsertGenre",
		q.qb.Insert(genresTableName).Columns("name").Values(g.Name))
}

func (q *querier) GetGenre(ctx context.Context, id int64) (model.Genre, error) {
	var g model.Genre
	err := q.get(ctx, "GetGenre", &g,
		q.qb.Select("id", "name").From(genresTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return model.Genre{}, notFound(err, "genre %d", id)
	}
	return g, nil
}

func (q *querier) ListGenres(ctx context.Context) ([]model.Genre, error) {
	genres := []model.Genre{}
	err := q.list(ctx, "ListGenres", &genres,
		q.qb.Select("id", "name").From(genresTableName).OrderBy("id"))
	return genres, err
}

func (q *querier) UpdateGenre(ctx context.Context, g model.Genre) error {
	err := q.exec(ctx, "UpdateGenre",
		q.qb.Update(genresTableName).Set("name", g.Name).Where(sq.Eq{"id": g.ID}))
	return notFound(err, "genre %d", g.ID)
}

func (q *querier) DeleteGenre(ctx context.Context, id int64) error {
	err := q.exec(ctx, "DeleteGenre", q.qb.Delete(genresTableName).Where(sq.Eq{"id": id}))
	return notFound(err, "genre %d", id)
}

func (q *querier) InsertLanguage(ctx context.Context, l model.Language) (int64, error) {
	return q.insertReturningID(ctx, "InsertLanguage",
		q.qb.Insert(languagesTableName).Columns("name").Values(l.Name))
}

func (q *querier) GetLanguage(ctx context.Context, id int64) (model.Language, error) {
	var l model.Language
	err := q.get(ctx, "GetLanguage", &l,
		q.qb.Select("id", "name").From(languagesTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return model.Language{}, notFound(err, "language %d", id)
	}
	return l, nil
}

func (q *querier) ListLanguages(ctx context.Context) ([]model.Language, error) {
	languages := []model.Language{}
	err := q.list(ctx, "ListLanguages", &languages,
		q.qb.Select("id", "name").From(languagesTableName).OrderBy("id"))
	return languages, err
}

func (q *querier) UpdateLanguage(ctx context.Context, l model.Language) error {
	err := q.exec(ctx, "UpdateLanguage",
		q.qb.Update(languagesTableName).Set("name", l.Name).Where(sq.Eq{"id": l.ID}))
	return notFound(err, "language %d", l.ID)
}

func (q *querier) DeleteLanguage(ctx context.Context, id int64) error {
	err := q.exec(ctx, "DeleteLanguage", q.qb.Delete(languagesTableName).Where(sq.Eq{"id": id}))
	return notFound(err, "language %d", id)
}

func (q *querier) LanguageExists(ctx context.Context, id int64) (bool, error) {
	return q.exists(ctx, languagesTableName, id)
}
