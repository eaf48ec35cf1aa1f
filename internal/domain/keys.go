package domain

import "context"

// CtxKey is the typed key family for request-scoped identity. The
// authorization middleware is the only writer; handlers and usecases read.
type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// UserIDFromContext pulls the authenticated user id out of a context that
// went through the authorization middleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(KeyUserID).(int64)
	return id, ok
}

// RoleFromContext pulls the authenticated role out of the request context.
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(KeyUserRole).(string)
	return role, ok
}
