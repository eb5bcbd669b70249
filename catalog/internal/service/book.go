package service

import (
	"context"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
)

// CreateBook stores the book and its genre set in one transaction.
// Unknown author/language ids are stored as null and unknown genre ids are dropped.
func (s *Service) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	if err := s.validate(req); err != nil {
		return model.Book{}, err
	}
	var out model.Book
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		b, err := s.resolveBook(ctx, q, req.Book(0))
		if err != nil {
			return err
		}
		id, err := q.InsertBook(ctx, b)
		if err != nil {
			return err
		}
		if err := q.SetBookGenres(ctx, id, req.GenreIDs); err != nil {
			return err
		}
		out, err = readBook(ctx, q, id)
		return err
	})
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, entityBook, model.ActionCreate, out.ID)
	return out, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	var out []model.Book
	err := s.repo.View(ctx, func(q repository.Querier) error {
		books, err := q.ListBooks(ctx)
		if err != nil {
			return err
		}
		ids := make([]int64, 0, len(books))
		for _, b := range books {
			ids = append(ids, b.ID)
		}
		genres, err := q.BookGenreIDs(ctx, ids...)
		if err != nil {
			return err
		}
		for i := range books {
			books[i].GenreIDs = genres[books[i].ID]
		}
		out = books
		return nil
	})
	return out, err
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	var out model.Book
	err := s.repo.View(ctx, func(q repository.Querier) (err error) {
		out, err = readBook(ctx, q, id)
		return err
	})
	return out, err
}

// UpdateBook replaces the scalar fields and the whole genre set.
// The book row is written first so concurrent updates of one book queue up behind its lock.
func (s *Service) UpdateBook(ctx context.Context, id int64, req model.BookRequest) (model.Book, error) {
	if err := s.validate(req); err != nil {
		return model.Book{}, err
	}
	var out model.Book
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		b, err := s.resolveBook(ctx, q, req.Book(id))
		if err != nil {
			return err
		}
		if err := q.UpdateBook(ctx, b); err != nil {
			return err
		}
		if err := q.SetBookGenres(ctx, id, req.GenreIDs); err != nil {
			return err
		}
		out, err = readBook(ctx, q, id)
		return err
	})
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, entityBook, model.ActionUpdate, id)
	return out, nil
}

// DeleteBook removes the book together with its copies and adaptations.
func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		return q.DeleteBook(ctx, id)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, entityBook, model.ActionDelete, id)
	return nil
}

func (s *Service) resolveBook(ctx context.Context, q repository.Querier, b model.Book) (model.Book, error) {
	var err error
	if b.AuthorID, err = s.optionalRef(ctx, "author_id", b.AuthorID, q.AuthorExists); err != nil {
		return model.Book{}, err
	}
	if b.LanguageID, err = s.optionalRef(ctx, "language_id", b.LanguageID, q.LanguageExists); err != nil {
		return model.Book{}, err
	}
	return b, nil
}

func readBook(ctx context.Context, q repository.Querier, id int64) (model.Book, error) {
	b, err := q.GetBook(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	genres, err := q.BookGenreIDs(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	b.GenreIDs = genres[id]
	return b, nil
}
