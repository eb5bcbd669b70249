package repository

import (
	"context"
	"database/sql"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/pkg/sqlite"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Repository hands out a Querier bound to a single transaction.
// Atomic commits when fn returns nil and rolls back otherwise.
type Repository interface {
	Atomic(ctx context.Context, fn func(q Querier) error) error
	View(ctx context.Context, fn func(q Querier) error) error
}

type Querier interface {
	InsertAuthor(ctx context.Context, a model.Author) (int64, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
	UpdateAuthor(ctx context.Context, a model.Author) error
	DeleteAuthor(ctx context.Context, id int64) error
	AuthorExists(ctx context.Context, id int64) (bool, error)

	InsertGenre(ctx context.Context, g model.Genre) (int64, error)
	GetGenre(ctx context.Context, id int64) (model.Genre, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)
	UpdateGenre(ctx context.Context, g model.Genre) error
	DeleteGenre(ctx context.Context, id int64) error

	InsertLanguage(ctx context.Context, l model.Language) (int64, error)
	GetLanguage(ctx context.Context, id int64) (model.Language, error)
	ListLanguages(ctx context.Context) ([]model.Language, error)
	UpdateLanguage(ctx context.Context, l model.Language) error
	DeleteLanguage(ctx context.Context, id int64) error
	LanguageExists(ctx context.Context, id int64) (bool, error)

	InsertBook(ctx context.Context, b model.Book) (int64, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, b model.Book) error
	DeleteBook(ctx context.Context, id int64) error
	BookExists(ctx context.Context, id int64) (bool, error)
	SetBookGenres(ctx context.Context, bookID int64, genreIDs []int64) error
	BookGenreIDs(ctx context.Context, bookIDs ...int64) (map[int64][]int64, error)

	InsertBookInstance(ctx context.Context, bi model.BookInstance) error
	GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error)
	ListBookInstances(ctx context.Context) ([]model.BookInstance, error)
	UpdateBookInstance(ctx context.Context, bi model.BookInstance) error
	DeleteBookInstance(ctx context.Context, id uuid.UUID) error

	InsertAdaptation(ctx context.Context, a model.Adaptation) (int64, error)
	GetAdaptation(ctx context.Context, id int64) (model.Adaptation, error)
	ListAdaptations(ctx context.Context) ([]model.Adaptation, error)
	UpdateAdaptation(ctx context.Context, a model.Adaptation) error
	DeleteAdaptation(ctx context.Context, id int64) error
	SetAdaptationCreators(ctx context.Context, adaptationID int64, authorIDs []int64) error
	AdaptationCreatorIDs(ctx context.Context, adaptationIDs ...int64) (map[int64][]int64, error)

	EnsureUser(ctx context.Context, username string) (model.Principal, error)
	UserExists(ctx context.Context, id int64) (bool, error)
	InsertToken(ctx context.Context, userID int64, digest string) error
	DeleteToken(ctx context.Context, digest string) error
	PrincipalByToken(ctx context.Context, digest string) (model.Principal, error)
}

type repository struct {
	db      *sqlx.DB
	qb      sq.StatementBuilderType
	readOps *sql.TxOptions
	log     *zap.Logger
}

var _ Repository = (*repository)(nil)

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	r := &repository{
		db:  db,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		log: log.Named("repo"),
		readOps: &sql.TxOptions{
			Isolation: sql.LevelRepeatableRead,
			ReadOnly:  true,
		},
	}
	if db.DriverName() == sqlite.DriverName {
		// sqlite has one isolation level and the pool holds a single connection
		r.qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		r.readOps = nil
	}
	return r, nil
}

func (r *repository) Atomic(ctx context.Context, fn func(q Querier) error) error {
	return r.inTx(ctx, nil, fn)
}

func (r *repository) View(ctx context.Context, fn func(q Querier) error) error {
	return r.inTx(ctx, r.readOps, fn)
}

func (r *repository) inTx(ctx context.Context, opts *sql.TxOptions, fn func(q Querier) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, opts)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				r.log.Error("rollback", zap.Error(rbErr))
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = r.classify("commit", cErr)
		}
	}()

	return fn(&querier{ext: tx, qb: r.qb, log: r.log})
}

type querier struct {
	ext sqlx.ExtContext
	qb  sq.StatementBuilderType
	log *zap.Logger
}

func (q *querier) get(ctx context.Context, op string, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, op)
	}
	if err := sqlx.GetContext(ctx, q.ext, dest, query, args...); err != nil {
		return q.classify(op, err)
	}
	return nil
}

func (q *querier) list(ctx context.Context, op string, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, op)
	}
	if err := sqlx.SelectContext(ctx, q.ext, dest, query, args...); err != nil {
		return q.classify(op, err)
	}
	return nil
}

// exec runs a statement and reports sql.ErrNoRows when it touched no row.
func (q *querier) exec(ctx context.Context, op string, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return errors.Wrap(err, op)
	}
	res, err := q.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return q.classify(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, op)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (q *querier) insertReturningID(ctx context.Context, op string, b sq.InsertBuilder) (int64, error) {
	var id int64
	if err := q.get(ctx, op, &id, b.Suffix("RETURNING id")); err != nil {
		return 0, err
	}
	return id, nil
}

func (q *querier) exists(ctx context.Context, table string, id any) (bool, error) {
	var n int
	err := q.get(ctx, "exists "+table, &n,
		q.qb.Select("1").From(table).Where(sq.Eq{"id": id}).Limit(1))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// replaceLinks swaps the owner's link rows for the given targets.
// Target ids absent from targetTable are dropped, not reported.
func (q *querier) replaceLinks(ctx context.Context, linkTable, ownerCol, targetCol, targetTable string, ownerID int64, targetIDs []int64) error {
	op := "replace " + linkTable
	if err := q.execAny(ctx, op, q.qb.Delete(linkTable).Where(sq.Eq{ownerCol: ownerID})); err != nil {
		return err
	}
	if len(targetIDs) == 0 {
		return nil
	}

	var known []int64
	err := q.list(ctx, op, &known,
		q.qb.Select("id").From(targetTable).Where(sq.Eq{"id": dedup(targetIDs)}).OrderBy("id"))
	if err != nil {
		return err
	}
	if len(known) < len(dedup(targetIDs)) {
		q.log.Debug("dropped unknown link targets",
			zap.String("table", linkTable), zap.Int64("owner", ownerID),
			zap.Int64s("requested", targetIDs), zap.Int64s("kept", known))
	}
	if len(known) == 0 {
		return nil
	}

	ins := q.qb.Insert(linkTable).Columns(ownerCol, targetCol)
	for _, id := range known {
		ins = ins.Values(ownerID, id)
	}
	return q.execAny(ctx, op, ins)
}

// linkIDs groups targetCol by ownerCol; every requested owner gets a non-nil slice.
func (q *querier) linkIDs(ctx context.Context, linkTable, ownerCol, targetCol string, ownerIDs []int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(ownerIDs))
	for _, id := range ownerIDs {
		out[id] = []int64{}
	}
	if len(ownerIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		Owner  int64 `db:"owner"`
		Target int64 `db:"target"`
	}
	err := q.list(ctx, "list "+linkTable, &rows,
		q.qb.Select(ownerCol+" AS owner", targetCol+" AS target").
			From(linkTable).
			Where(sq.Eq{ownerCol: ownerIDs}).
			OrderBy(ownerCol, targetCol))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.Owner] = append(out[row.Owner], row.Target)
	}
	return out, nil
}

func (q *querier) execAny(ctx context.Context, op string, b sq.Sqlizer) error {
	if err := q.exec(ctx, op, b); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return nil
}

func dedup(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Arguments are lowered to plain driver values so both drivers bind them the same way.

func dateArg(d *model.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func int64Arg(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}
