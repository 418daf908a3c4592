package vegetable

import (
	"context"

	"github.com/MikeMC777/verduleria-ecom/internal/money"
)

// SampleCatalog is the starter stock loaded by `verduleria-cli seed`.
func SampleCatalog() []Vegetable {
	return []Vegetable{
		{Name: "Tomato", Category: "Fruit Vegetables", Description: "Fresh red tomatoes, vine ripened", Price: money.FromInt(40), Unit: "kg", Stock: 50, Rating: 4.5},
		{Name: "Potato", Category: "Root Vegetables", Description: "Versatile potatoes for every kitchen", Price: money.FromInt(30), Unit: "kg", Stock: 100, Rating: 4.3},
		{Name: "Carrot", Category: "Root Vegetables", Description: "Crunchy orange carrots", Price: money.FromInt(35), Unit: "kg", Stock: 60, Rating: 4.4},
		{Name: "Onion", Category: "Bulb Vegetables", Description: "Red onions with a sharp flavour", Price: money.FromInt(25), Unit: "kg", Stock: 80, Rating: 4.2},
		{Name: "Cucumber", Category: "Fruit Vegetables", Description: "Cool and crisp cucumbers", Price: money.FromInt(20), Unit: "kg", Stock: 40, Rating: 4.1},
		{Name: "Spinach", Category: "Leafy Greens", Description: "Organic green spinach leaves", Price: money.FromInt(15), Unit: "bunch", Stock: 30, Rating: 4.6},
		{Name: "Bell Pepper", Category: "Fruit Vegetables", Description: "Sweet peppers in three colours", Price: money.FromInt(60), Unit: "kg", Stock: 25, Rating: 4.5},
		{Name: "Broccoli", Category: "Cruciferous", Description: "Tender green broccoli heads", Price: money.FromInt(55), Unit: "piece", Stock: 20, Rating: 4.3},
	}
}

// Seed adds items to an empty catalog and reports how many were added.
// A catalog that already has entries is left alone unless force is set.
func Seed(ctx context.Context, repo Repository, items []Vegetable, force bool) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 && !force {
		return 0, nil
	}
	n := 0
	for i := range items {
		v := items[i]
		v.ID = NewID()
		if err := repo.Create(ctx, &v); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
