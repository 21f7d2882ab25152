package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllReturnsQueryHandler retrieves every return request for back-office
// processing. Only admins may run it.
type GetAllReturnsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllReturnsQueryHandler creates a handler for the full return list.
// Requires a GORM database connection for query execution.
func NewGetAllReturnsQueryHandler(db *gorm.DB) GetAllReturnsQueryHandler {
	return GetAllReturnsQueryHandler{db: db}
}

// Handle executes the query to retrieve all returns across all users.
// Gates on the admin role; results are sorted newest first.
func (h GetAllReturnsQueryHandler) Handle(ctx context.Context, query GetAllReturnsQuery) ([]ReturnResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := query.Actor().RequireAdmin("list all returns"); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + returnColumns + `
		FROM returns
		ORDER BY created_at DESC, id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rets, err := scanReturns(rows)
	if err != nil {
		return nil, err
	}

	if err = attachReturnDetails(ctx, h.db, rets); err != nil {
		return nil, err
	}

	return rets, nil
}
