package cli

import (
	"bytes"
	"cuisine/domain"
	"cuisine/factory"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMeal_Golden(t *testing.T) {
	t.Parallel()
	pal := newPalette(false)
	g := goldie.New(t)

	tests := []struct {
		golden string
		key    rune
		output string
	}{
		{golden: "meal_kid_text", key: 'C', output: "text"},
		{golden: "meal_adult_text", key: 'A', output: "text"},
		{golden: "meal_adult_json", key: 0, output: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, pal.renderMeal(&buf, factory.Serve(factory.ForKey(tt.key)), tt.output))
			g.Assert(t, tt.golden, buf.Bytes())
		})
	}
}

func TestRenderMenu_Golden(t *testing.T) {
	t.Parallel()

	var meals []domain.Meal
	for _, fam := range factory.Families() {
		f, err := factory.NewFactory(fam)
		require.NoError(t, err)
		meals = append(meals, factory.Serve(f))
	}

	var buf bytes.Buffer
	require.NoError(t, newPalette(false).renderMenu(&buf, meals, "text"))
	goldie.New(t).Assert(t, "menu_text", buf.Bytes())
}

func TestRenderMeal_ColorIsPerPalette(t *testing.T) {
	t.Parallel()
	meal := factory.Serve(factory.NewKidCuisineFactory())

	var colored, plain bytes.Buffer
	require.NoError(t, newPalette(true).renderMeal(&colored, meal, "text"))
	require.NoError(t, newPalette(false).renderMeal(&plain, meal, "text"))

	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "Peanut")
	assert.Equal(t, "Sandwich: Peanut\nDessert: IceCreamSundae\n", plain.String())
}
