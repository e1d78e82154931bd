package queries

import (
	"context"

	"storefront/internal/core/ports"
)

// GetMenuCategoriesQueryHandler serves the distinct category list.
type GetMenuCategoriesQueryHandler struct {
	menuRepo ports.MenuRepository
}

// NewGetMenuCategoriesQueryHandler creates a handler for category listings.
func NewGetMenuCategoriesQueryHandler(menuRepo ports.MenuRepository) GetMenuCategoriesQueryHandler {
	return GetMenuCategoriesQueryHandler{menuRepo: menuRepo}
}

// Handle returns the distinct categories in alphabetical order.
func (h GetMenuCategoriesQueryHandler) Handle(
	ctx context.Context, query GetMenuCategoriesQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.menuRepo.Categories(ctx)
}
