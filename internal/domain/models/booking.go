package models

// Booking is one confirmed seat reservation. Rows are created by the seat
// booking operation and never updated or deleted by this core. For a given
// schedule, seat numbers are unique.
type Booking struct {
	BookingID  int64 `json:"booking_id"`
	ScheduleID int64 `json:"schedule_id"`
	SeatNumber int   `json:"seat_number"`
	UserID     int64 `json:"user_id"`
}

// SeatAvailability reports the seat map state of one schedule. TotalSeats
// comes from the bus capacity; OccupiedSeats holds the seat numbers already
// booked.
type SeatAvailability struct {
	TotalSeats    int   `json:"total_seats"`
	OccupiedSeats []int `json:"occupied_seats"`
}

// Occupied reports whether a seat number is in the occupied set.
func (a SeatAvailability) Occupied(seat int) bool {
	for _, s := range a.OccupiedSeats {
		if s == seat {
			return true
		}
	}
	return false
}
