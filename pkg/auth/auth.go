package auth

import (
	"context"

	"github.com/pkg/errors"
)

type ctxKey int

const userNameKey ctxKey = iota + 1

var ErrNoUser = errors.New("user-name is empty")

func SetAuthContext(ctx context.Context, userName string) context.Context {
	return context.WithValue(ctx, userNameKey, userName)
}

func GetUserName(ctx context.Context) (string, error) {
	userName, ok := ctx.Value(userNameKey).(string)
	if !ok || userName == "" {
		return "", ErrNoUser
	}
	return userName, nil
}
