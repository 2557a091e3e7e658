package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/clc-api/internal/models"
)

// ErrDuplicateApplication signals the unique (student_id) constraint fired,
// i.e. a second submission raced or repeated an earlier one.
var ErrDuplicateApplication = errors.New("application already exists for student")

const applicationColumns = `id, student_id, village, post_office, police_station, district, state, pin_code,
	marksheet_url, payment_id, payment_amount, payment_mode, payment_date, created_at, updated_at`

const pgUniqueViolation = "23505"

// ApplicationRepository handles persistence of CLC applications.
type ApplicationRepository struct {
	db *sqlx.DB
}

// NewApplicationRepository constructs the repository.
func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new unpaid application. The unique constraint on
// student_id is the authority for the one-application-per-student rule;
// violations surface as ErrDuplicateApplication.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	const query = `INSERT INTO applications
		(id, student_id, village, post_office, police_station, district, state, pin_code, marksheet_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		app.ID, app.StudentID,
		app.Village, app.PostOffice, app.PoliceStation, app.District, app.State, app.PinCode,
		app.MarksheetURL, app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return ErrDuplicateApplication
		}
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

// FindByStudent returns the student's application, or sql.ErrNoRows.
func (r *ApplicationRepository) FindByStudent(ctx context.Context, studentID string) (*models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE student_id = $1`, applicationColumns)
	var app models.Application
	if err := r.db.GetContext(ctx, &app, query, studentID); err != nil {
		return nil, err
	}
	return &app, nil
}

// FindDetailByStudent returns the application joined with the owning
// student's profile.
func (r *ApplicationRepository) FindDetailByStudent(ctx context.Context, studentID string) (*models.ApplicationDetail, error) {
	app, err := r.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1`, studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, studentID); err != nil {
		return nil, err
	}

	return &models.ApplicationDetail{Application: *app, Student: student}, nil
}

// ConfirmPayment sets all four payment fields in one statement, guarded by
// payment_id IS NULL so a repeat call can never overwrite an earlier
// payment. Returns sql.ErrNoRows when nothing was updated.
func (r *ApplicationRepository) ConfirmPayment(ctx context.Context, studentID, paymentID string, amount float64, mode string, paidAt time.Time) (*models.Application, error) {
	query := fmt.Sprintf(`UPDATE applications
		SET payment_id = $1, payment_amount = $2, payment_mode = $3, payment_date = $4, updated_at = $4
		WHERE student_id = $5 AND payment_id IS NULL
		RETURNING %s`, applicationColumns)

	var app models.Application
	if err := r.db.GetContext(ctx, &app, query, paymentID, amount, mode, paidAt, studentID); err != nil {
		return nil, err
	}
	return &app, nil
}
