package controller

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"convo-backend/middleware"
	"convo-backend/pkg/apperrors"
	"convo-backend/pkg/query"
)

// respondError converts any error to the standard {code, message} body.
// Internal faults are logged with full detail but surfaced generically.
func respondError(ctx *gin.Context, err error) {
	app := apperrors.From(err)
	if app.Code == apperrors.CodeInternal {
		slog.Error("request failed",
			"request_id", middleware.RequestIDFrom(ctx),
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"error", err,
		)
	}
	ctx.JSON(apperrors.HTTPStatus(app.Code), app)
}

// bindError wraps a gin binding failure as a validation error carrying the
// validator's description of every violated constraint.
func bindError(err error) error {
	return apperrors.Wrap(apperrors.CodeValidation, err.Error(), err)
}

// idParam parses an integer path parameter.
func idParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.Validation(fmt.Sprintf("%s must be an integer", name))
	}
	return id, nil
}

// listQuery is the shared pagination/sort section of list requests. The
// binding layer coerces the raw query strings to typed values, so the
// query builder downstream only ever sees typed inputs.
type listQuery struct {
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType" binding:"omitempty,oneof=asc desc"`
	Limit    int    `form:"limit" binding:"omitempty,min=1"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
}

func (q listQuery) options() query.Options {
	return query.Options{
		SortBy:   q.SortBy,
		SortType: q.SortType,
		Limit:    q.Limit,
		Page:     q.Page,
	}
}
