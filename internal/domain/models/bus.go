package models

// BusTrip is one scheduled departure on a route link. Read-only.
type BusTrip struct {
	BusName        string  `json:"bus_name"`
	BusType        string  `json:"bus_type"`
	DepartureTime  string  `json:"departure_time"`
	Duration       string  `json:"duration"`
	ReachingTime   string  `json:"reaching_time"`
	StarRating     float64 `json:"star_rating"`
	Price          int64   `json:"price"`
	SeatsAvailable int64   `json:"seats_available"`
}

// SearchFilter is built per search and never stored.
// Ranges are inclusive and deliberately not checked for inversion.
type SearchFilter struct {
	RouteLink string `json:"route_link"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	MinFare   int64  `json:"min_fare"`
	MaxFare   int64  `json:"max_fare"`
}
