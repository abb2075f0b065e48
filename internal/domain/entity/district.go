package entity

// District is a named geographic partition used for routing and reporting.
type District struct {
	ID       int64
	Name     string
	State    string
	Boundary string // Serialized GeoJSON; stored, never evaluated.
}
