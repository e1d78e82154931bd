package queries

import (
	"context"

	"storefront/internal/core/domain/model/menu"
	"storefront/internal/core/ports"
)

// GetMenuQueryHandler serves catalog listings.
type GetMenuQueryHandler struct {
	menuRepo ports.MenuRepository
}

// NewGetMenuQueryHandler creates a handler for catalog listings.
func NewGetMenuQueryHandler(menuRepo ports.MenuRepository) GetMenuQueryHandler {
	return GetMenuQueryHandler{menuRepo: menuRepo}
}

// Handle lists catalog items, filtered by category when the query names one.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]menu.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.Category() == "" {
		return h.menuRepo.GetAll(ctx)
	}
	return h.menuRepo.GetByCategory(ctx, query.Category())
}
