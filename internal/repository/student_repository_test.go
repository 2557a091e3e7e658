package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDBMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

var studentCols = []string{
	"id", "reference_id", "student_name", "father_name", "mother_name", "class_name", "class_roll_no",
	"session_name", "exam_roll_no", "registration_no", "registration_year", "exam_type", "result_status",
	"passing_year", "passing_division_grade", "board_univ_name", "mobile_number", "email", "created_at", "updated_at",
}

func studentRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(studentCols).AddRow(
		"stu-1", "REF001", "RAHUL KUMAR", "FATHER", "MOTHER", "B.A.", "12",
		"2019-22", "190001", "REG-190001", "2019", "Regular", "PASS",
		"2022", "First Division", "Purnea University", "9000000000", "rahul@example.com", now, now,
	)
}

func TestStudentRepositoryFindByCredentials(t *testing.T) {
	db, mock, cleanup := newDBMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM students WHERE reference_id = \\$1 AND student_name = \\$2").
		WithArgs("REF001", "RAHUL KUMAR").
		WillReturnRows(studentRow())

	student, err := repo.FindByCredentials(context.Background(), "REF001", "RAHUL KUMAR")
	require.NoError(t, err)
	assert.Equal(t, "stu-1", student.ID)
	assert.Equal(t, "RAHUL KUMAR", student.StudentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByCredentialsMismatch(t *testing.T) {
	db, mock, cleanup := newDBMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM students WHERE reference_id = \\$1 AND student_name = \\$2").
		WithArgs("REF001", "WRONG NAME").
		WillReturnRows(sqlmock.NewRows(studentCols))

	_, err := repo.FindByCredentials(context.Background(), "REF001", "WRONG NAME")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newDBMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM students WHERE id = \\$1").
		WithArgs("stu-1").
		WillReturnRows(studentRow())

	student, err := repo.FindByID(context.Background(), "stu-1")
	require.NoError(t, err)
	assert.Equal(t, "REF001", student.ReferenceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
