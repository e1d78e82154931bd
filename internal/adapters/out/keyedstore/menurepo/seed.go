package menurepo

import "storefront/internal/core/domain/model/menu"

// DefaultItems is the storefront's starter catalog. The ids are stable
// strings so existing orders keep resolving after a reseed.
func DefaultItems() []menu.Item {
	return []menu.Item{
		{
			ID:          "1",
			Name:        "Margherita Pizza",
			Description: "Classic pizza with fresh mozzarella, tomatoes, and basil on a crispy thin crust.",
			Price:       12.99,
			Image:       "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=500&q=80",
			Category:    "Pizza",
		},
		{
			ID:          "2",
			Name:        "Pepperoni Pizza",
			Description: "Loaded with spicy pepperoni slices and melted mozzarella cheese.",
			Price:       14.99,
			Image:       "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=500&q=80",
			Category:    "Pizza",
		},
		{
			ID:          "3",
			Name:        "Classic Burger",
			Description: "Juicy beef patty with lettuce, tomato, pickles, and our secret sauce.",
			Price:       10.99,
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=500&q=80",
			Category:    "Burgers",
		},
		{
			ID:          "4",
			Name:        "Cheese Burger",
			Description: "Double cheese burger with caramelized onions and crispy bacon.",
			Price:       12.49,
			Image:       "https://images.unsplash.com/photo-1553979459-d2229ba7433b?w=500&q=80",
			Category:    "Burgers",
		},
		{
			ID:          "5",
			Name:        "Caesar Salad",
			Description: "Crisp romaine lettuce with parmesan, croutons, and creamy Caesar dressing.",
			Price:       8.99,
			Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=500&q=80",
			Category:    "Salads",
		},
		{
			ID:          "6",
			Name:        "Chicken Wings",
			Description: "Crispy fried chicken wings tossed in spicy buffalo sauce. Served with ranch.",
			Price:       11.49,
			Image:       "https://images.unsplash.com/photo-1626082927389-6cd097cdc6ec?w=500&q=80",
			Category:    "Sides",
		},
		{
			ID:          "7",
			Name:        "French Fries",
			Description: "Golden crispy fries seasoned with sea salt and herbs. Perfectly crunchy.",
			Price:       4.99,
			Image:       "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=500&q=80",
			Category:    "Sides",
		},
		{
			ID:          "8",
			Name:        "Chocolate Milkshake",
			Description: "Rich and creamy chocolate milkshake topped with whipped cream.",
			Price:       5.99,
			Image:       "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=500&q=80",
			Category:    "Drinks",
		},
		{
			ID:          "9",
			Name:        "Veggie Wrap",
			Description: "Fresh vegetables, hummus, and feta cheese wrapped in a warm tortilla.",
			Price:       9.49,
			Image:       "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?w=500&q=80",
			Category:    "Wraps",
		},
		{
			ID:          "10",
			Name:        "Pasta Carbonara",
			Description: "Creamy pasta with crispy pancetta, egg, parmesan, and black pepper.",
			Price:       13.99,
			Image:       "https://images.unsplash.com/photo-1612874742237-6526221588e3?w=500&q=80",
			Category:    "Pasta",
		},
	}
}
