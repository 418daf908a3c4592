package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MikeMC777/verduleria-ecom/internal/vegetable"
)

func names(vs []vegetable.Vegetable) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	items := []vegetable.Vegetable{
		{Name: "Tomato", Category: "vegetables", Description: "Fresh red tomatoes"},
		{Name: "Spinach", Category: "leafy", Description: "Organic green leaves"},
		{Name: "Carrot", Category: "roots", Description: "Crunchy and ORANGE"},
		{Name: "Green Chili", Category: "vegetables", Description: "Hot"},
	}

	cases := []struct {
		name     string
		category string
		search   string
		want     []string
	}{
		{"all", CategoryAll, "", []string{"Tomato", "Spinach", "Carrot", "Green Chili"}},
		{"category", "vegetables", "", []string{"Tomato", "Green Chili"}},
		{"search name", "", "TOM", []string{"Tomato"}},
		{"search description", CategoryAll, "orange", []string{"Carrot"}},
		{"composed", "vegetables", "green", []string{"Green Chili"}},
		{"no match", "leafy", "carrot", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, names(Filter(items, tc.category, tc.search)))
		})
	}

	assert.Equal(t, []string{"leafy", "roots", "vegetables"}, Categories(items))
}
