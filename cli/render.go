package cli

import (
	"cuisine/domain"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// palette holds the colors of one command tree
type palette struct {
	variant *color.Color
	family  *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		variant: color.New(color.FgCyan, color.Bold),
		family:  color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.variant, p.family} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) renderMeal(w io.Writer, meal domain.Meal, output string) error {
	if output == "json" {
		b, err := json.MarshalIndent(meal, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	if _, err := fmt.Fprintf(w, "Sandwich: %s\n", p.variant.Sprint(meal.Sandwich)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Dessert: %s\n", p.variant.Sprint(meal.Dessert))
	return err
}

func (p *palette) renderMenu(w io.Writer, meals []domain.Meal, output string) error {
	if output == "json" {
		b, err := json.MarshalIndent(meals, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	for _, m := range meals {
		if _, err := fmt.Fprintf(w, "%s | %s | %s\n",
			p.family.Sprint(m.Family), p.variant.Sprint(m.Sandwich), p.variant.Sprint(m.Dessert)); err != nil {
			return err
		}
	}
	return nil
}
