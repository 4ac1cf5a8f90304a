package model

// Categories carried by the seed catalog. CategoryAll is a filter value
// only, never a stored category.
const (
	CategoryAll          = "All"
	CategoryVegetables   = "Vegetables"
	CategoryFruits       = "Fruits"
	CategoryDairy        = "Dairy"
	CategoryMilletSnacks = "Millet Snacks"
)

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
}

// ProductUpdate is a partial update. Nil fields leave the stored value
// untouched.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	ImageURL    *string  `json:"imageUrl"`
	Description *string  `json:"description"`
}

// ApplyTo merges the update into p.
func (u ProductUpdate) ApplyTo(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
}
