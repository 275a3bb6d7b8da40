package view

import (
	"strconv"

	"artgie-web/internal/product"
)

// Card is the display model of one product tile.
type Card struct {
	ID          int
	Name        string
	Description string
	Price       string
	Category    string
	InStock     bool
	Size        string
	Material    string
	Sides       string
	Image       string
	Visible     bool
}

func FormatPrice(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}

func MapCard(p product.Product) Card {
	return Card{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       FormatPrice(p.Price),
		Category:    p.Category,
		InStock:     p.InStock,
		Size:        p.Size,
		Material:    p.Material,
		Sides:       p.Sides,
		Image:       p.Image,
		Visible:     true,
	}
}

func MapCards(products []product.Product) []Card {
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, MapCard(p))
	}
	return cards
}

// CountLabel renders "1 product" / "N products".
func CountLabel(n int) string {
	if n == 1 {
		return "1 product"
	}
	return strconv.Itoa(n) + " products"
}
