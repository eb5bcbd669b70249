package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const tokenBytes = 20

// Authenticate maps a bearer token to the principal it was issued to.
func (s *Service) Authenticate(ctx context.Context, token string) (model.Principal, error) {
	if token == "" {
		return model.Principal{}, errs.ErrUnauthorized
	}
	var p model.Principal
	err := s.repo.View(ctx, func(q repository.Querier) (err error) {
		p, err = q.PrincipalByToken(ctx, digest(token))
		return err
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Principal{}, errs.ErrUnauthorized
		}
		return model.Principal{}, err
	}
	return p, nil
}

// IssueToken registers the user if needed and returns a new token.
// Only its digest is stored, so the token cannot be shown again.
func (s *Service) IssueToken(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", errs.NewValidationError("username", "required")
	}
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "generate token")
	}
	token := hex.EncodeToString(raw)

	err := s.repo.Atomic(ctx, func(q repository.Querier) error {
		p, err := q.EnsureUser(ctx, username)
		if err != nil {
			return err
		}
		return q.InsertToken(ctx, p.ID, digest(token))
	})
	if err != nil {
		return "", err
	}
	s.log.Info("token issued", zap.String("username", username))
	return token, nil
}

func (s *Service) RevokeToken(ctx context.Context, token string) error {
	return s.repo.Atomic(ctx, func(q repository.Querier) error {
		return q.DeleteToken(ctx, digest(token))
	})
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
