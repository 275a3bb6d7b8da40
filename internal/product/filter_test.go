package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleCatalog() []Product {
	return []Product{
		{ID: 1, Name: "Yard Sign", Price: 25, Category: "Yard", InStock: true},
		{ID: 2, Name: "Banner", Price: 60, Category: "Banner", InStock: false},
		{ID: 3, Name: "arrow sign", Price: 25, Category: "Directional", InStock: true},
		{ID: 4, Name: "Metal Panel", Price: 90, Category: "Yard", InStock: false},
	}
}

func ids(products []Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	catalog := sampleCatalog()

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"Empty selects all", Filter{}, []int{1, 2, 3, 4}},
		{"In stock only", Filter{InStockOnly: true}, []int{1, 3}},
		{"Single category", Filter{Categories: []string{"Yard"}}, []int{1, 4}},
		{"Multiple categories", Filter{Categories: []string{"Banner", "Directional"}}, []int{2, 3}},
		{"Category and stock", Filter{Categories: []string{"Yard"}, InStockOnly: true}, []int{1}},
		{"No match", Filter{Categories: []string{"Banner"}, InStockOnly: true}, []int{}},
		{"Unknown category", Filter{Categories: []string{"Neon"}}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(catalog)
			assert.Equal(t, tt.want, ids(got))

			for _, p := range got {
				assert.Contains(t, catalog, p)
				assert.True(t, tt.filter.Matches(p))
			}
		})
	}
}

func TestFilter_ApplyDoesNotMutateInput(t *testing.T) {
	catalog := sampleCatalog()
	_ = Filter{InStockOnly: true}.Apply(catalog)
	assert.Equal(t, sampleCatalog(), catalog)
}

func TestFilter_ToggleCategory(t *testing.T) {
	t.Run("Adds when absent", func(t *testing.T) {
		f := Filter{}.ToggleCategory("Yard")
		assert.Equal(t, []string{"Yard"}, f.Categories)
		assert.True(t, f.HasCategory("Yard"))
	})

	t.Run("Removes when present", func(t *testing.T) {
		f := Filter{Categories: []string{"Yard", "Banner"}}.ToggleCategory("Yard")
		assert.Equal(t, []string{"Banner"}, f.Categories)
	})

	t.Run("Twice is identity", func(t *testing.T) {
		for _, start := range []Filter{
			{},
			{Categories: []string{"Banner"}},
			{Categories: []string{"Banner", "Yard"}, InStockOnly: true},
		} {
			for _, c := range []string{"Yard", "Banner", "Directional"} {
				got := start.ToggleCategory(c).ToggleCategory(c)
				assert.ElementsMatch(t, start.Categories, got.Categories)
				assert.Equal(t, start.InStockOnly, got.InStockOnly)
			}
		}
	})

	t.Run("Receiver untouched", func(t *testing.T) {
		orig := Filter{Categories: []string{"Yard", "Banner"}}
		_ = orig.ToggleCategory("Yard")
		_ = orig.ToggleCategory("Directional")
		assert.Equal(t, []string{"Yard", "Banner"}, orig.Categories)
	})
}

func TestFilter_ClearRestoresCatalog(t *testing.T) {
	catalog := sampleCatalog()

	f := Filter{}.ToggleCategory("Banner").SetInStockOnly(true)
	assert.Equal(t, 2, f.ActiveCount())

	cleared := f.Clear()
	assert.Equal(t, Filter{}, cleared)
	assert.True(t, cleared.IsEmpty())
	assert.Equal(t, catalog, cleared.Apply(catalog))
}

func TestFilter_ActiveCount(t *testing.T) {
	assert.Equal(t, 0, Filter{}.ActiveCount())
	assert.Equal(t, 1, Filter{InStockOnly: true}.ActiveCount())
	assert.Equal(t, 3, Filter{Categories: []string{"a", "b"}, InStockOnly: true}.ActiveCount())
}
