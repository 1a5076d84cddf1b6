package domain

// BookOutcome is the tagged result of a seat-booking attempt. A seat
// conflict is an expected outcome the caller can recover from by picking
// another seat; a failed attempt is a store problem worth surfacing.
type BookOutcome int

const (
	// BookFailed: the store rejected the attempt for a reason other than
	// the seat uniqueness rule, and the transaction was rolled back.
	BookFailed BookOutcome = iota
	// BookConfirmed: the booking row was committed.
	BookConfirmed
	// BookSeatTaken: another booking already holds (schedule, seat).
	BookSeatTaken
	// BookInvalidSeat: the schedule does not exist or the seat number lies
	// outside [1, SeatCapacity] for its bus.
	BookInvalidSeat
)

func (o BookOutcome) String() string {
	switch o {
	case BookConfirmed:
		return "confirmed"
	case BookSeatTaken:
		return "seat_taken"
	case BookInvalidSeat:
		return "invalid_seat"
	default:
		return "failed"
	}
}

// Confirmed collapses the outcome to the legacy boolean contract.
func (o BookOutcome) Confirmed() bool {
	return o == BookConfirmed
}
