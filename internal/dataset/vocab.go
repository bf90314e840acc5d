package dataset

// Fixed finite vocabularies for generated domains. Field values are
// always drawn from these lists so generated tables stay small enough
// to reason about in the teaching widgets.
var (
	firstNames = []string{"John", "Jane", "Michael", "Sarah", "David", "Lisa", "Tom", "Anna", "Chris", "Emma"}
	lastNames  = []string{"Smith", "Johnson", "Brown", "Davis", "Wilson", "Miller", "Moore", "Taylor", "Anderson", "Thomas"}
	cities     = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix"}
	states     = []string{"NY", "CA", "IL", "TX", "AZ"}

	categories   = []string{"Electronics", "Clothing", "Books", "Home & Garden", "Sports", "Toys"}
	productNames = map[string][]string{
		"Electronics":   {"Laptop", "Smartphone", "Tablet", "Headphones", "Camera"},
		"Clothing":      {"T-Shirt", "Jeans", "Jacket", "Sneakers", "Dress"},
		"Books":         {"Fiction Novel", "Programming Book", "History Book", "Science Book", "Art Book"},
		"Home & Garden": {"Chair", "Table", "Lamp", "Plant", "Vase"},
		"Sports":        {"Basketball", "Tennis Racket", "Running Shoes", "Yoga Mat", "Dumbbells"},
		"Toys":          {"Action Figure", "Puzzle", "Board Game", "Doll", "RC Car"},
	}

	regions        = []string{"North", "South", "East", "West", "Central"}
	customerStatus = []string{"Active", "Inactive", "Suspended"}
	orderStatus    = []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled"}
	paymentMethods = []string{"Credit Card", "PayPal", "Bank Transfer"}
)
