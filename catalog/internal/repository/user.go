package repository

import (
	"context"
	"database/sql"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

const (
	usersTableName      = `users`
	authTokensTableName = `auth_tokens`
)

func (q *querier) EnsureUser(ctx context.Context, username string) (model.Principal, error) {
	var p model.Principal
	err := q.get(ctx, "EnsureUser", &p,
		q.qb.Select("id", "username").From(usersTableName).Where(sq.Eq{"username": username}))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Principal{}, err
	}
	id, err := q.insertReturningID(ctx, "EnsureUser",
		q.qb.Insert(usersTableName).Columns("username").Values(username))
	if err != nil {
		return model.Principal{}, err
	}
	return model.Principal{ID: id, Username: username}, nil
}

func (q *querier) UserExists(ctx context.Context, id int64) (bool, error) {
	return q.exists(ctx, usersTableName, id)
}

func (q *querier) InsertToken(ctx context.Context, userID int64, digest string) error {
	return q.exec(ctx, "InsertToken",
		q.qb.Insert(authTokensTableName).Columns("digest", "user_id").Values(digest, userID))
}

func (q *querier) DeleteToken(ctx context.Context, digest string) error {
	err := q.exec(ctx, "DeleteToken", q.qb.Delete(authTokensTableName).Where(sq.Eq{"digest": digest}))
	return notFound(err, "token")
}

func (q *querier) PrincipalByToken(ctx context.Context, digest string) (model.Principal, error) {
	var p model.Principal
	err := q.get(ctx, "PrincipalByToken", &p,
		q.qb.Select("u.id", "u.username").
			From(authTokensTableName+" t").
			Join(usersTableName+" u ON u.id = t.user_id").
			Where(sq.Eq{"t.digest": digest}))
	if err != nil {
		return model.Principal{}, notFound(err, "principal")
	}
	return p, nil
}
