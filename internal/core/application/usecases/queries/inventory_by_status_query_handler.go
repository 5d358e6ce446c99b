package queries

import (
	"context"

	"gorm.io/gorm"
)

// InventoryByStatusQueryHandler counts packages per status straight from the
// packages table.
type InventoryByStatusQueryHandler struct {
	db *gorm.DB
}

// NewInventoryByStatusQueryHandler creates a handler for inventory snapshots.
func NewInventoryByStatusQueryHandler(db *gorm.DB) InventoryByStatusQueryHandler {
	return InventoryByStatusQueryHandler{db: db}
}

// Handle returns one row per status present in storage, busiest first.
// Statuses with no packages are omitted.
func (h InventoryByStatusQueryHandler) Handle(
	ctx context.Context,
	query InventoryByStatusQuery,
) ([]InventoryByStatusRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM packages
		GROUP BY status
		ORDER BY COUNT(*) DESC, status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inventory := make([]InventoryByStatusRow, 0)

	for rows.Next() {
		var row InventoryByStatusRow
		if err = rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, err
		}
		inventory = append(inventory, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return inventory, nil
}
