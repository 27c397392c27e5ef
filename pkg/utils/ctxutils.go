// pkg/utils/ctxutils.go

package utils

import (
	"context"

	"inspection-system/pkg/contextkeys"
	apperrors "inspection-system/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(int64)
	if !ok || userID <= 0 {
		return 0, apperrors.ErrUnauthorized
	}
	return userID, nil
}

// GetCompanyIDFromCtx возвращает компанию вызывающего, её кладёт AuthMiddleware.
func GetCompanyIDFromCtx(ctx context.Context) (int64, error) {
	companyID, ok := ctx.Value(contextkeys.CompanyIDKey).(int64)
	if !ok || companyID <= 0 {
		return 0, apperrors.ErrCompanyIDNotFoundInContext
	}
	return companyID, nil
}

func WithCaller(ctx context.Context, userID, companyID int64) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, userID)
	return context.WithValue(ctx, contextkeys.CompanyIDKey, companyID)
}
