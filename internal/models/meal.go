package models

// Meal is catalog item referenced by order
type Meal struct {
	ID            string
	Name          string
	ChefEmail     string
	Price         float64
	PaymentStatus string
	OrderStatus   string
}
