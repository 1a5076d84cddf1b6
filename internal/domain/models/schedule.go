package models

// Route is immutable reference data provisioned out-of-band.
type Route struct {
	RouteID     int64  `json:"route_id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

type Bus struct {
	BusID        int64  `json:"bus_id"`
	BusNumber    string `json:"bus_number"`
	CompanyID    int64  `json:"company_id"`
	SeatCapacity int    `json:"seat_capacity"`
}

type Company struct {
	CompanyID   int64  `json:"company_id"`
	CompanyName string `json:"company_name"`
}

// Schedule is one bus trip instance on one date; many schedules may share
// a route.
type Schedule struct {
	ScheduleID    int64   `json:"schedule_id"`
	RouteID       int64   `json:"route_id"`
	BusID         int64   `json:"bus_id"`
	DepartureDate string  `json:"departure_date"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
}

// ScheduleSummary is one row of the search result: schedule joined with
// route, bus and company.
type ScheduleSummary struct {
	ScheduleID    int64   `json:"schedule_id"`
	BusNumber     string  `json:"bus_number"`
	CompanyName   string  `json:"company_name"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
	Distance      int     `json:"distance"`
	TravelDate    string  `json:"travel_date"`
}

// ScheduleDetail is the full denormalized projection shown after booking.
type ScheduleDetail struct {
	ScheduleID    int64   `json:"schedule_id"`
	BusNumber     string  `json:"bus_number"`
	CompanyName   string  `json:"company_name"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
	Distance      int     `json:"distance"`
	DepartureDate string  `json:"departure_date"`
	Source        string  `json:"source"`
	Destination   string  `json:"destination"`
}

// ScheduleDate pairs a travel date with the schedule serving it, used to
// drive date selection before seat selection.
type ScheduleDate struct {
	TravelDate string `json:"travel_date"`
	ScheduleID int64  `json:"schedule_id"`
}
