package service

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
	"github.com/google/uuid"
)

// CreateBookInstance assigns a fresh id; the referenced book must exist.
func (s *Service) CreateBookInstance(ctx context.Context, req model.BookInstanceRequest) (model.BookInstance, error) {
	if err := s.validate(req); err != nil {
		return model.BookInstance{}, err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return model.BookInstance{}, err
	}
	var out model.BookInstance
	err = s.repo.Atomic(ctx, func(q repository.Querier) error {
		bi, err := s.resolveBookInstance(ctx, q, req.BookInstance(id))
		if err != nil {
			return err
		}
		if err := q.InsertBookInstance(ctx, bi); err != nil {
			return err
		}
		out, err = q.GetBookInstance(ctx, id)
		return err
	})
	if err != nil {
		return model.BookInstance{}, err
	}
	s.publish(ctx, entityBookInstance, model.ActionCreate, out.ID)
	return out, nil
}

func (s *Service) ListBookInstances(ctx context.Context) ([]model.BookInstance, error) {
	var out []model.BookInstance
	err := s.repo.View(ctx, func(q repository.Querier) (err error) {
		out, err = q.ListBookInstances(ctx)
		return err
	})
	return out, err
}

func (s *Service) GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error) {
	var out model.BookInstance
	err := s.repo.View(ctx, func(q repository.Querier) (err error) {
		out, err = q.GetBookInstance(ctx, id)
		return err
	})
	return out, err
}

func (s *Service) UpdateBookInstance(ctx context.Context, id uuid.UUID, req model.BookInstanceRequest) (model.BookInstance, error) {
	if err := s.validate(req); err != nil {
		return model.BookInstance{}, err
	}
	var out model.BookInstance
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		bi, err := s.resolveBookInstance(ctx, q, req.BookInstance(id))
		if err != nil {
			return err
		}
		if err := q.UpdateBookInstance(ctx, bi); err != nil {
			return err
		}
		out, err = q.GetBookInstance(ctx, id)
		return err
	})
	if err != nil {
		return model.BookInstance{}, err
	}
	s.publish(ctx, entityBookInstance, model.ActionUpdate, id)
	return out, nil
}

func (s *Service) DeleteBookInstance(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		return q.DeleteBookInstance(ctx, id)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, entityBookInstance, model.ActionDelete, id)
	return nil
}

func (s *Service) resolveBookInstance(ctx context.Context, q repository.Querier, bi model.BookInstance) (model.BookInstance, error) {
	if err := requireBook(ctx, q, bi.BookID); err != nil {
		return model.BookInstance{}, err
	}
	var err error
	if bi.BorrowerID, err = s.optionalRef(ctx, "borrower_id", bi.BorrowerID, q.UserExists); err != nil {
		return model.BookInstance{}, err
	}
	return bi, nil
}
