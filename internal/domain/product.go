package domain

import "strings"

type Category string

const (
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryEggs       Category = "eggs"
	CategoryDairy      Category = "dairy"
	CategoryOther      Category = "other"
)

// Title returns the category with its first letter capitalized, as shown on
// the product detail screen.
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c)[:1]) + string(c)[1:]
}

type Product struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Stock    int      `json:"stock"`
	Category Category `json:"category"`
	Farmer   string   `json:"farmer"`
}
