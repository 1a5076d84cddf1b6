package handlers

import "github.com/go-sql-driver/mysql"

func duplicateSeatErr() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1-15' for key 'booking.uq_schedule_seat'"}
}
