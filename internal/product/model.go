package product

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"`
	Color    string  `json:"color"`
	Stock    int     `json:"stock"`
	Status   Status  `json:"status"`
}

// Categories the dashboard offers in its pickers.
var Categories = []string{"Smartphones", "Laptops", "Tablets", "Accessories", "Smart Watches"}
