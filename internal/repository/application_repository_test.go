package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/clc-api/internal/models"
)

var applicationCols = []string{
	"id", "student_id", "village", "post_office", "police_station", "district", "state", "pin_code",
	"marksheet_url", "payment_id", "payment_amount", "payment_mode", "payment_date", "created_at", "updated_at",
}

func unpaidApplicationRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(applicationCols).AddRow(
		"app-1", "stu-1", "Banmankhi", "Banmankhi Bazar", "Banmankhi", "Purnea", "Bihar", "854202",
		"https://files.example.com/abc.jpg", nil, nil, nil, nil, now, now,
	)
}

func paidApplicationRow(paidAt time.Time) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(applicationCols).AddRow(
		"app-1", "stu-1", "Banmankhi", "Banmankhi Bazar", "Banmankhi", "Purnea", "Bihar", "854202",
		"https://files.example.com/abc.jpg", "pay_123", 2.00, "Online", paidAt, now, now,
	)
}

func testApplication() *models.Application {
	now := time.Now().UTC()
	return &models.Application{
		ID:        "app-1",
		StudentID: "stu-1",
		Address: models.Address{
			Village:       "Banmankhi",
			PostOffice:    "Banmankhi Bazar",
			PoliceStation: "Banmankhi",
			District:      "Purnea",
			State:         "Bihar",
			PinCode:       "854202",
		},
		MarksheetURL: "https://files.example.com/abc.jpg",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestApplicationRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newDBMock(t)
	defer cleanup()
	repo := NewApplicationRepository(db)

	mock.ExpectExec("INSERT INTO applications").
		WithArgs(
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), testApplication())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryCreateDuplicate(t *testing.T) {
	db, mock, cleanup := newDBMock(t)
	defer cleanup()
	repo := NewApplicationRepository(db)

	mock.ExpectExec("INSERT INTO applications").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "applications_student_id_key"})

	err := repo.Create(context.Background(), testApplication())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateApplication))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryFindByStudent(t *testing.T) {
	db, mock, cleanup := newDBMock(t)
	defer cleanup()
	repo := NewApplicationRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM applications WHERE student_id = \\$1").
		WithArgs("stu-1").
		WillReturnRows(unpaidApplicationRow())

	app, err := repo.FindByStudent(context.Background(), "stu-1")
	require.NoError(t, err)
	assert.Equal(t, "app-1", app.ID)
	assert.Equal(t, "Purnea", app.District)
	assert.False(t, app.Paid())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryFindDetailByStudent(t *testing.T) {
	db, mock, cleanup := newDBMock(t)
	defer cleanup()
	repo := NewApplicationRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM applications WHERE student_id = \\$1").
		WithArgs("stu-1").
		WillReturnRows(paidApplicationRow(time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM students WHERE id = \\$1").
		WithArgs("stu-1").
		WillReturnRows(studentRow())

	detail, err := repo.FindDetailByStudent(context.Background(), "stu-1")
	require.NoError(t, err)
	assert.Equal(t, "app-1", detail.ID)
	assert.Equal(t, "RAHUL KUMAR", detail.Student.StudentName)
	assert.True(t, detail.Paid())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryConfirmPayment(t *testing.T) {
	db, mock, cleanup := newDBMock(t)
	defer cleanup()
	repo := NewApplicationRepository(db)

	paidAt := time.Now().UTC()
	mock.ExpectQuery("UPDATE applications").
		WithArgs("pay_123", 2.00, "Online", paidAt, "stu-1").
		WillReturnRows(paidApplicationRow(paidAt))

	app, err := repo.ConfirmPayment(context.Background(), "stu-1", "pay_123", 2.00, "Online", paidAt)
	require.NoError(t, err)
	require.True(t, app.Paid())
	assert.Equal(t, "pay_123", *app.PaymentID)
	assert.Equal(t, 2.00, *app.PaymentAmount)
	assert.Equal(t, "Online", *app.PaymentMode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepositoryConfirmPaymentAlreadyPaidOrMissing(t *testing.T) {
	db, mock, cleanup := newDBMock(t)
	defer cleanup()
	repo := NewApplicationRepository(db)

	mock.ExpectQuery("UPDATE applications").
		WillReturnRows(sqlmock.NewRows(applicationCols))

	_, err := repo.ConfirmPayment(context.Background(), "stu-1", "pay_123", 2.00, "Online", time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}
