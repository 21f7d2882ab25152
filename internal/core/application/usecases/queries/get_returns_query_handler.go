package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetReturnsQueryHandler retrieves a customer's return requests from the
// database, newest first, with lines attached.
type GetReturnsQueryHandler struct {
	db *gorm.DB
}

// NewGetReturnsQueryHandler creates a handler for return history queries.
// Requires a GORM database connection for query execution.
func NewGetReturnsQueryHandler(db *gorm.DB) GetReturnsQueryHandler {
	return GetReturnsQueryHandler{db: db}
}

// Handle executes the query to retrieve the caller's returns.
func (h GetReturnsQueryHandler) Handle(ctx context.Context, query GetReturnsQuery) ([]ReturnResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+returnColumns+`
		FROM returns
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.Actor().UserID()).Rows()
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
