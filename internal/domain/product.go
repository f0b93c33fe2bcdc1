package domain

// Product represents a catalog item.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`           // price in main currency units
	Stock       *int    `json:"stock,omitempty"` // units in stock, nil when never set
}

// Key returns the product id.
func (p Product) Key() string {
	return p.ID
}

type productPayload struct {
	Name        *string  `mapstructure:"name" validate:"required,min=1"`
	Category    *string  `mapstructure:"category"`
	Description *string  `mapstructure:"description"`
	Price       *float64 `mapstructure:"price" validate:"required"`
	Stock       *int     `mapstructure:"stock"`
}

// productUpdatePayload relaxes validation rules for partial updates
type productUpdatePayload struct {
	Name        *string  `mapstructure:"name" validate:"omitempty,min=1"`
	Category    *string  `mapstructure:"category"`
	Description *string  `mapstructure:"description"`
	Price       *float64 `mapstructure:"price"`
	Stock       *int     `mapstructure:"stock"`
}

// ProductSchema builds and patches Product records.
type ProductSchema struct{}

// Kind implements store.Schema.
func (ProductSchema) Kind() string {
	return "Product"
}

// New implements store.Schema. name and price are required.
func (ProductSchema) New(id string, fields map[string]any) (Product, error) {
	var payload productPayload
	if err := decodeFields(fields, &payload); err != nil {
		return Product{}, err
	}
	trim(payload.Name)
	trim(payload.Category)
	trim(payload.Description)
	if err := checkFields(&payload); err != nil {
		return Product{}, err
	}

	p := Product{
		ID:    id,
		Name:  *payload.Name,
		Price: *payload.Price,
		Stock: payload.Stock,
	}
	if payload.Category != nil {
		p.Category = *payload.Category
	}
	if payload.Description != nil {
		p.Description = *payload.Description
	}
	return p, nil
}

// Merge implements store.Schema.
func (ProductSchema) Merge(p Product, fields map[string]any) (Product, bool, error) {
	var payload productUpdatePayload
	if err := decodeFields(fields, &payload); err != nil {
		return p, false, err
	}
	trim(payload.Name)
	trim(payload.Category)
	trim(payload.Description)
	if err := checkFields(&payload); err != nil {
		return p, false, err
	}

	applied := false
	if payload.Name != nil {
		p.Name = *payload.Name
		applied = true
	}
	if payload.Category != nil {
		p.Category = *payload.Category
		applied = true
	}
	if payload.Description != nil {
		p.Description = *payload.Description
		applied = true
	}
	if payload.Price != nil {
		p.Price = *payload.Price
		applied = true
	}
	if payload.Stock != nil {
		p.Stock = payload.Stock
		applied = true
	}
	return p, applied, nil
}
