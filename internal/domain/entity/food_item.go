package entity

// FoodItem is a canonical catalog entry. Names are globally unique.
type FoodItem struct {
	ID       int64
	Name     string
	Icon     string // Reference to the icon asset.
	Category string // e.g. "Basic", "Protein", "Baby".
}
