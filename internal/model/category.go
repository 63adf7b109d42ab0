package model

// Category represents a row in categories.csv.
type Category struct {
	Name        string
	Kind        Kind
	Description string
}
