package queries

import (
	"context"

	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetReturnQueryHandler retrieves a single return projection.
//
// Ownership is enforced in the query itself: a customer asking for someone
// else's return gets ObjectNotFoundError, the same as for a missing id.
type GetReturnQueryHandler struct {
	db *gorm.DB
}

// NewGetReturnQueryHandler creates a handler for single-return queries.
// Requires a GORM database connection for query execution.
func NewGetReturnQueryHandler(db *gorm.DB) GetReturnQueryHandler {
	return GetReturnQueryHandler{db: db}
}

// Handle executes the query to retrieve one return with its lines.
func (h GetReturnQueryHandler) Handle(ctx context.Context, query GetReturnQuery) (ReturnResponse, error) {
	if err := query.Validate(); err != nil {
		return ReturnResponse{}, err
	}

	sql := `SELECT ` + returnColumns + ` FROM returns WHERE id = ?`
	args := []any{query.ReturnID()}
	if !query.Actor().IsAdmin() {
		sql += ` AND user_id = ?`
		args = append(args, query.Actor().UserID())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return ReturnResponse{}, err
	}
	defer rows.Close()

	rets, err := scanReturns(rows)
	if err != nil {
		return ReturnResponse{}, err
	}
	if len(rets) == 0 {
		return ReturnResponse{}, errs.NewObjectNotFoundError("returnID", query.ReturnID())
	}

	if err = attachReturnDetails(ctx, h.db, rets); err != nil {
		return ReturnResponse{}, err
	}

	return rets[0], nil
}
