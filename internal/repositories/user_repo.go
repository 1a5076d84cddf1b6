package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intdb "github.com/SiddharthDaryani/Bus-booking-system/internal/db"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain/models"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/utils"

	"github.com/go-sql-driver/mysql"
)

type UserRepo struct {
	Conn *intdb.Conn
}

func (r UserRepo) Exists(userID int64) (bool, error) {
	if userID <= 0 {
		return false, nil
	}
	h, err := r.Conn.Acquire()
	if err != nil {
		return false, err
	}

	var count int
	if err := h.QueryRow(`SELECT COUNT(*) FROM user WHERE UserID = ?`, userID).Scan(&count); err != nil {
		return false, domain.InternalError{Msg: "user existence query failed", Err: err}
	}
	return count > 0, nil
}

// Register inserts a new user row with the caller-supplied UserID. A
// duplicate id returns (false, nil): the store's primary key makes the
// collision explicit and it never overwrites the existing row. Any other
// store failure propagates.
func (r UserRepo) Register(u models.User, passwordHash string) (bool, error) {
	if u.UserID <= 0 {
		return false, domain.ValidationError{Field: "user_id", Msg: "must be positive"}
	}
	h, err := r.Conn.Acquire()
	if err != nil {
		return false, err
	}

	_, err = h.Exec(`
		INSERT INTO user (UserID, FirstName, LastName, Email, PhoneNumber, Password)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.UserID, u.FirstName, u.LastName, u.Email, u.PhoneNumber, passwordHash)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry {
			utils.LogEvent("", "user", "register",
				fmt.Sprintf("user_id=%d already registered", u.UserID))
			return false, nil
		}
		return false, domain.InternalError{Msg: "user insert failed", Err: err}
	}

	utils.LogEvent("", "user", "register", fmt.Sprintf("user_id=%d registered", u.UserID))
	return true, nil
}

// IDByEmail looks a user up by external key. A missing email is a
// NotFoundError, not a failure.
func (r UserRepo) IDByEmail(email string) (int64, error) {
	h, err := r.Conn.Acquire()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := h.QueryRow(`SELECT UserID FROM user WHERE Email = ?`, email).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.NotFoundError{Resource: "user"}
		}
		return 0, domain.InternalError{Msg: "user lookup failed", Err: err}
	}
	return id, nil
}

// CredentialsByEmail fetches the user row and password hash for login.
func (r UserRepo) CredentialsByEmail(email string) (models.User, string, error) {
	h, err := r.Conn.Acquire()
	if err != nil {
		return models.User{}, "", err
	}

	var (
		u    models.User
		hash string
	)
	err = h.QueryRow(`
		SELECT UserID, FirstName, LastName, Email, PhoneNumber, Password
		FROM user WHERE Email = ?
	`, email).Scan(&u.UserID, &u.FirstName, &u.LastName, &u.Email, &u.PhoneNumber, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, "", domain.InternalError{Msg: "user credential query failed", Err: err}
	}
	return u, hash, nil
}
