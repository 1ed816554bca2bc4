package models

// Route is one distinct route name from bus_route_information.
type Route struct {
	Name string `json:"name"`
}

// RouteLink joins a route name to its rows in bus_information.
type RouteLink struct {
	Route string `json:"route"`
	Link  string `json:"route_link"`
	Found bool   `json:"found"`
}
