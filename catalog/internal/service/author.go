package service

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
)

func (s *Service) CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error) {
	if err := s.validate(req); err != nil {
		return model.Author{}, err
	}
	var out model.Author
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		id, err := q.InsertAuthor(ctx, req.Author(0))
		if err != nil {
			return err
		}
		out, err = q.GetAuthor(ctx, id)
		return err
	})
	if err != nil {
		return model.Author{}, err
	}
	s.publish(ctx, entityAuthor, model.ActionCreate, out.ID)
	return out, nil
}

func (s *Service) ListAuthors(ctx context.Context) ([]model.Author, error) {
	var out []model.Author
	err := s.repo.View(ctx, func(q repository.Querier) (err error) {
		out, err = q.ListAuthors(ctx)
		return err
	})
	return out, err
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	var out model.Author
	err := s.repo.View(ctx, func(q repository.Querier) (err error) {
		out, err = q.GetAuthor(ctx, id)
		return err
	})
	return out, err
}

func (s *Service) UpdateAuthor(ctx context.Context, id int64, req model.AuthorRequest) (model.Author, error) {
	if err := s.validate(req); err != nil {
		return model.Author{}, err
	}
	var out model.Author
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		if err := q.UpdateAuthor(ctx, req.Author(id)); err != nil {
			return err
		}
		var err error
		out, err = q.GetAuthor(ctx, id)
		return err
	})
	if err != nil {
		return model.Author{}, err
	}
	s.publish(ctx, entityAuthor, model.ActionUpdate, id)
	return out, nil
}

// DeleteAuthor leaves the author's books in place with author_id set to null.
func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		return q.DeleteAuthor(ctx, id)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, entityAuthor, model.ActionDelete, id)
	return nil
}
