package storefront

import (
	"sort"
	"strings"

	"github.com/MikeMC777/verduleria-ecom/internal/vegetable"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// Filter narrows the catalog by category (exact match, or "all"/"") and by
// a case-insensitive substring of name or description.
func Filter(items []vegetable.Vegetable, category, search string) []vegetable.Vegetable {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]vegetable.Vegetable, 0, len(items))
	for _, v := range items {
		if category != "" && category != CategoryAll && v.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(v.Name), search) &&
			!strings.Contains(strings.ToLower(v.Description), search) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Categories lists the distinct categories in the catalog, sorted.
func Categories(items []vegetable.Vegetable) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range items {
		if v.Category == "" || seen[v.Category] {
			continue
		}
		seen[v.Category] = true
		out = append(out, v.Category)
	}
	sort.Strings(out)
	return out
}
