package service

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
)

func (s *Service) CreateGenre(ctx context.Context, req model.GenreRequest) (model.Genre, error) {
	if err := s.validate(req); err != nil {
		return model.Genre{}, err
	}
	var out model.Genre
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		id, err := q.InsertGenre(ctx, model.Genre{Name: req.Name})
		if err != nil {
			return err
		}
		out, err = q.GetGenre(ctx, id)
		return err
	})
	if err != nil {
		return model.Genre{}, err
	}
	s.publish(ctx, entityGenre, model.ActionCreate, out.ID)
	return out, nil
}

func (s *Service) ListGenres(ctx context.Context) ([]model.Genre, error) {
	var out []model.Genre
	err := s.repo.View(ctx, func(q repository.Querier) (err error) {
		out, err = q.ListGenres(ctx)
		return err
	})
	return out, err
}

func (s *Service) GetGenre(ctx context.Context, id int64) (model.Genre, error) {
	var out model.Genre
	err := s.repo.View(ctx, func(q repository.Querier) (err error) {
		out, err = q.GetGenre(ctx, id)
		return err
	})
	return out, err
}

func (s *Service) UpdateGenre(ctx context.Context, id int64, req model.GenreRequest) (model.Genre, error) {
	if err := s.validate(req); err != nil {
		return model.Genre{}, err
	}
	var out model.Genre
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		if err := q.UpdateGenre(ctx, model.Genre{ID: id, Name: req.Name}); err != nil {
			return err
		}
		var err error
		out, err = q.GetGenre(ctx, id)
		return err
	})
	if err != nil {
		return model.Genre{}, err
	}
	s.publish(ctx, entityGenre, model.ActionUpdate, id)
	return out, nil
}

func (s *Service) DeleteGenre(ctx context.Context, id int64) error {
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		return q.DeleteGenre(ctx, id)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, entityGenre, model.ActionDelete, id)
	return nil
}

func (s *Service) CreateLanguage(ctx context.Context, req model.LanguageRequest) (model.Language, error) {
	if err := s.validate(req); err != nil {
		return model.Language{}, err
	}
	var out model.Language
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		id, err := q.InsertLanguage(ctx, model.Language{Name: req.Name})
		if err != nil {
			return err
		}
		out, err = q.GetLanguage(ctx, id)
		return err
	})
	if err != nil {
		return model.Language{}, err
	}
	s.publish(ctx, entityLanguage, model.ActionCreate, out.ID)
	return out, nil
}

func (s *Service) ListLanguages(ctx context.Context) ([]model.Language, error) {
	var out []model.Language
	err := s.repo.View(ctx, func(q repository.Querier) (err error) {
		out, err = q.ListLanguages(ctx)
		return err
	})
	return out, err
}

func (s *Service) GetLanguage(ctx context.Context, id int64) (model.Language, error) {
	var out model.Language
	err := s.repo.View(ctx, func(q repository.Querier) (err error) {
		out, err = q.GetLanguage(ctx, id)
		return err
	})
	return out, err
}

func (s *Service) UpdateLanguage(ctx context.Context, id int64, req model.LanguageRequest) (model.Language, error) {
	if err := s.validate(req); err != nil {
		return model.Language{}, err
	}
	var out model.Language
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		if err := q.UpdateLanguage(ctx, model.Language{ID: id, Name: req.Name}); err != nil {
			return err
		}
		var err error
		out, err = q.GetLanguage(ctx, id)
		return err
	})
	if err != nil {
		return model.Language{}, err
	}
	s.publish(ctx, entityLanguage, model.ActionUpdate, id)
	return out, nil
}

func (s *Service) DeleteLanguage(ctx context.Context, id int64) error {
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		return q.DeleteLanguage(ctx, id)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, entityLanguage, model.ActionDelete, id)
	return nil
}
