package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/queue"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
	"github.com/Astemirdum/catalog-service/pkg/auth"
	"github.com/Astemirdum/catalog-service/pkg/validate"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	entityAuthor       = "author"
	entityGenre        = "genre"
	entityLanguage     = "language"
	entityBook         = "book"
	entityBookInstance = "bookinstance"
	entityAdaptation   = "adaptation"
)

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	queue     queue.Enqueuer
	validator *validate.CustomValidator
	now       func() time.Time
}

func NewService(repo repository.Repository, enq queue.Enqueuer, log *zap.Logger) *Service {
	v := validate.NewCustomValidator()
	v.RegisterStructValidation(authorLifespan, model.AuthorRequest{})
	return &Service{
		log:       log.Named("service"),
		repo:      repo,
		queue:     enq,
		validator: v,
		now:       time.Now,
	}
}

func authorLifespan(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(model.AuthorRequest)
	if !ok || req.DateOfBirth == nil || req.DateOfDeath == nil {
		return
	}
	if req.DateOfDeath.Before(*req.DateOfBirth) {
		sl.ReportError(req.DateOfDeath, "date_of_death", "DateOfDeath", "gtefield", "date_of_birth")
	}
}

func (s *Service) validate(req any) error {
	err := s.validator.Validate(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate")
	}
	out := &errs.ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		reason := fe.Tag()
		if fe.Param() != "" {
			reason = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		out.Fields[fe.Field()] = reason
	}
	return out
}

// publish runs after commit; a broker failure never undoes a stored change.
func (s *Service) publish(ctx context.Context, entity string, action model.Action, id any) {
	ev := model.Event{
		Entity:     entity,
		Action:     action,
		ID:         fmt.Sprint(id),
		OccurredAt: s.now().UTC(),
	}
	if userName, err := auth.GetUserName(ctx); err == nil {
		ev.Actor = userName
	}
	if err := s.queue.Enqueue(ctx, ev); err != nil {
		s.log.Warn("enqueue event",
			zap.String("entity", entity), zap.String("action", string(action)),
			zap.String("id", ev.ID), zap.Error(err))
	}
}

// optionalRef keeps id only when it names an existing row.
func (s *Service) optionalRef(ctx context.Context, field string, id *int64, exists func(context.Context, int64) (bool, error)) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	ok, err := exists(ctx, *id)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.log.Debug("unknown optional reference stored as null", zap.String("field", field), zap.Int64("id", *id))
		return nil, nil
	}
	return id, nil
}

func requireBook(ctx context.Context, q repository.Querier, id int64) error {
	ok, err := q.BookExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errs.ErrNotFound, "book %d", id)
	}
	return nil
}
