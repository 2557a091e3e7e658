package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/clc-api/internal/models"
)

const studentColumns = `id, reference_id, student_name, father_name, mother_name, class_name, class_roll_no,
	session_name, exam_roll_no, registration_no, registration_year, exam_type, result_status, passing_year,
	passing_division_grade, board_univ_name, mobile_number, email, created_at, updated_at`

// StudentRepository reads the seeded student directory. The API surface
// never writes to it.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByCredentials returns the student whose reference id and registered
// name both match exactly. Callers treat sql.ErrNoRows as a credential
// mismatch without learning which half was wrong.
func (r *StudentRepository) FindByCredentials(ctx context.Context, referenceID, studentName string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE reference_id = $1 AND student_name = $2`, studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, referenceID, studentName); err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByID returns a student by primary key.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1`, studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}
