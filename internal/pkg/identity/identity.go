package identity

import "context"

type ctxKey struct{}

// WithUserID кладёт в контекст id пользователя из внешнего каталога учётных записей.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(ctxKey{}).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
