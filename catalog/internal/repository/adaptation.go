package repository

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
)

const (
	adaptationsTableName        = `adaptations`
	adaptationCreatorsTableName = `adaptation_creators`
)

var adaptationColumns = []string{"id", "title", "media_type", "release_date", "book_id"}

func (q *querier) InsertAdaptation(ctx context.Context, a model.Adaptation) (int64, error) {
	return q.insertReturningID(ctx, "InsertAdaptation",
		q.qb.Insert(adaptationsTableName).
			Columns("title", "media_type", "release_date", "book_id").
			Values(a.Title, string(a.MediaType), a.ReleaseDate.String(), a.BookID))
}

func (q *querier) GetAdaptation(ctx context.Context, id int64) (model.Adaptation, error) {
	var a model.Adaptation
	err := q.get(ctx, "GetAdaptation", &a,
		q.qb.Select(adaptationColumns...).From(adaptationsTableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return model.Adaptation{}, notFound(err, "adaptation %d", id)
	}
	return a, nil
}

func (q *querier) ListAdaptations(ctx context.Context) ([]model.Adaptation, error) {
	adaptations := []model.Adaptation{}
	err := q.list(ctx, "ListAdaptations", &adaptations,
		q.qb.Select(adaptationColumns...).From(adaptationsTableName).OrderBy("id"))
	return adaptations, err
}

func (q *querier) UpdateAdaptation(ctx context.Context, a model.Adaptation) error {
	err := q.exec(ctx, "UpdateAdaptation",
		q.qb.Update(adaptationsTableName).
			SetMap(map[string]any{
				"title":        a.Title,
				"media_type":   string(a.MediaType),
				"release_date": a.ReleaseDate.String(),
				"book_id":      a.BookID,
			}).
			Where(sq.Eq{"id": a.ID}))
	return notFound(err, "adaptation %d", a.ID)
}

func (q *querier) DeleteAdaptation(ctx context.Context, id int64) error {
	err := q.exec(ctx, "DeleteAdaptation", q.qb.Delete(adaptationsTableName).Where(sq.Eq{"id": id}))
	return notFound(err, "adaptation %d", id)
}

func (q *querier) SetAdaptationCreators(ctx context.Context, adaptationID int64, authorIDs []int64) error {
	return q.replaceLinks(ctx, adaptationCreatorsTableName, "adaptation_id", "author_id", authorsTableName, adaptationID, authorIDs)
}

func (q *querier) AdaptationCreatorIDs(ctx context.Context, adaptationIDs ...int64) (map[int64][]int64, error) {
	return q.linkIDs(ctx, adaptationCreatorsTableName, "adaptation_id", "author_id", adaptationIDs)
}
