package queries

import (
	"context"

	"storefront/internal/core/domain/model/menu"
	"storefront/internal/core/ports"
)

// GetMenuItemQueryHandler serves single catalog item lookups.
type GetMenuItemQueryHandler struct {
	menuRepo ports.MenuRepository
}

// NewGetMenuItemQueryHandler creates a handler for catalog item lookups.
func NewGetMenuItemQueryHandler(menuRepo ports.MenuRepository) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{menuRepo: menuRepo}
}

// Handle fetches one catalog item. Unknown ids surface as
// ObjectNotFoundError from the repository.
func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (*menu.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.menuRepo.GetByID(ctx, query.ItemID())
}
