package service

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
)

func (s *Service) CreateAdaptation(ctx context.Context, req model.AdaptationRequest) (model.Adaptation, error) {
	if err := s.validate(req); err != nil {
		return model.Adaptation{}, err
	}
	var out model.Adaptation
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		if err := requireBook(ctx, q, req.BookID); err != nil {
			return err
		}
		id, err := q.InsertAdaptation(ctx, req.Adaptation(0))
		if err != nil {
			return err
		}
		if err := q.SetAdaptationCreators(ctx, id, req.CreatorIDs); err != nil {
			return err
		}
		out, err = readAdaptation(ctx, q, id)
		return err
	})
	if err != nil {
		return model.Adaptation{}, err
	}
	s.publish(ctx, entityAdaptation, model.ActionCreate, out.ID)
	return out, nil
}

func (s *Service) ListAdaptations(ctx context.Context) ([]model.Adaptation, error) {
	var out []model.Adaptation
	err := s.repo.View(ctx, func(q repository.Querier) error {
		adaptations, err := q.ListAdaptations(ctx)
		if err != nil {
			return err
		}
		ids := make([]int64, 0, len(adaptations))
		for _, a := range adaptations {
			ids = append(ids, a.ID)
		}
		creators, err := q.AdaptationCreatorIDs(ctx, ids...)
		if err != nil {
			return err
		}
		for i := range adaptations {
			adaptations[i].CreatorIDs = creators[adaptations[i].ID]
		}
		out = adaptations
		return nil
	})
	return out, err
}

func (s *Service) GetAdaptation(ctx context.Context, id int64) (model.Adaptation, error) {
	var out model.Adaptation
	err := s.repo.View(ctx, func(q repository.Querier) (err error) {
		out, err = readAdaptation(ctx, q, id)
		return err
	})
	return out, err
}

func (s *Service) UpdateAdaptation(ctx context.Context, id int64, req model.AdaptationRequest) (model.Adaptation, error) {
	if err := s.validate(req); err != nil {
		return model.Adaptation{}, err
	}
	var out model.Adaptation
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		if err := requireBook(ctx, q, req.BookID); err != nil {
			return err
		}
		if err := q.UpdateAdaptation(ctx, req.Adaptation(id)); err != nil {
			return err
		}
		if err := q.SetAdaptationCreators(ctx, id, req.CreatorIDs); err != nil {
			return err
		}
		var err error
		out, err = readAdaptation(ctx, q, id)
		return err
	})
	if err != nil {
		return model.Adaptation{}, err
	}
	s.publish(ctx, entityAdaptation, model.ActionUpdate, id)
	return out, nil
}

func (s *Service) DeleteAdaptation(ctx context.Context, id int64) error {
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		return q.DeleteAdaptation(ctx, id)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, entityAdaptation, model.ActionDelete, id)
	return nil
}

func readAdaptation(ctx context.Context, q repository.Querier, id int64) (model.Adaptation, error) {
	a, err := q.GetAdaptation(ctx, id)
	if err != nil {
		return model.Adaptation{}, err
	}
	creators, err := q.AdaptationCreatorIDs(ctx, id)
	if err != nil {
		return model.Adaptation{}, err
	}
	a.CreatorIDs = creators[id]
	return a, nil
}
