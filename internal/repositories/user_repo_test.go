package repositories

import (
	"fmt"
	"testing"

	intdb "github.com/SiddharthDaryani/Bus-booking-system/internal/db"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain"
	"github.com/SiddharthDaryani/Bus-booking-system/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newUserRepo(t *testing.T) (UserRepo, sqlmock.Sqlmock, func()) {
	t.Helper()
	h, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return UserRepo{Conn: intdb.FromHandle(h)}, mock, func() { h.Close() }
}

func testUser() models.User {
	return models.User{
		UserID:      7,
		FirstName:   "Asha",
		LastName:    "Kulkarni",
		Email:       "asha@example.com",
		PhoneNumber: "9900112233",
	}
}

func TestRegisterNewUser(t *testing.T) {
	repo, mock, done := newUserRepo(t)
	defer done()

	mock.ExpectExec("INSERT INTO user").
		WithArgs(int64(7), "Asha", "Kulkarni", "asha@example.com", "9900112233", "hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Register(testUser(), "hash")
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if !ok {
		t.Fatalf("first registration should succeed")
	}
}

func TestRegisterDuplicateIDReturnsFalseNotError(t *testing.T) {
	repo, mock, done := newUserRepo(t)
	defer done()

	mock.ExpectExec("INSERT INTO user").
		WillReturnError(duplicateEntryErr())

	ok, err := repo.Register(testUser(), "hash")
	if err != nil {
		t.Fatalf("duplicate id must not be an error, got: %v", err)
	}
	if ok {
		t.Fatalf("duplicate registration must report false")
	}
}

func TestRegisterOtherFailurePropagates(t *testing.T) {
	repo, mock, done := newUserRepo(t)
	defer done()

	mock.ExpectExec("INSERT INTO user").
		WillReturnError(fmt.Errorf("table 'user' is read only"))

	_, err := repo.Register(testUser(), "hash")
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got: %v", err)
	}
}

func TestExists(t *testing.T) {
	repo, mock, done := newUserRepo(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.Exists(7)
	if err != nil || !ok {
		t.Fatalf("user 7 should exist (err=%v)", err)
	}
	ok, err = repo.Exists(8)
	if err != nil || ok {
		t.Fatalf("user 8 should not exist (err=%v)", err)
	}
}

func TestIDByEmail(t *testing.T) {
	repo, mock, done := newUserRepo(t)
	defer done()

	mock.ExpectQuery("SELECT UserID FROM user").WithArgs("asha@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"UserID"}).AddRow(7))
	mock.ExpectQuery("SELECT UserID FROM user").WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"UserID"}))

	id, err := repo.IDByEmail("asha@example.com")
	if err != nil || id != 7 {
		t.Fatalf("lookup: got id=%d err=%v", id, err)
	}

	_, err = repo.IDByEmail("nobody@example.com")
	if !domain.IsNotFound(err) {
		t.Fatalf("missing email should be not-found, got: %v", err)
	}
}
