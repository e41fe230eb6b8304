package models

import "strings"

// Category identifies which product line a row belongs to. The storefront
// used to keep one table per category; here it is a tag on the generic
// products table.
type Category string

const (
	CategoryBakery     Category = "bakery"
	CategoryFruits     Category = "fruits"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryBeverages  Category = "beverages"
	CategoryGrains     Category = "grains"
	CategoryVegetables Category = "vegetables"
	CategoryGeneric    Category = "products"
)

// Categories lists every known category tag.
var Categories = []Category{
	CategoryBakery,
	CategoryFruits,
	CategoryDairy,
	CategoryMeat,
	CategoryBeverages,
	CategoryGrains,
	CategoryVegetables,
	CategoryGeneric,
}

// ParseCategory resolves a caller-supplied category string, case-insensitive.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return known, true
		}
	}
	return "", false
}
