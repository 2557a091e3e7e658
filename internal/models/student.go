package models

import "time"

// Student represents a pre-registered individual eligible to apply for a
// College Leaving Certificate. Rows are seeded by an administrative process;
// this API only ever reads them.
type Student struct {
	ID                   string    `db:"id" json:"id"`
	ReferenceID          string    `db:"reference_id" json:"referenceId"`
	StudentName          string    `db:"student_name" json:"studentName"`
	FatherName           string    `db:"father_name" json:"fatherName"`
	MotherName           string    `db:"mother_name" json:"motherName"`
	ClassName            string    `db:"class_name" json:"class"`
	ClassRollNo          string    `db:"class_roll_no" json:"classRollNo"`
	SessionName          string    `db:"session_name" json:"session"`
	ExamRollNo           string    `db:"exam_roll_no" json:"examRollNo"`
	RegistrationNo       string    `db:"registration_no" json:"registrationNo"`
	RegistrationYear     string    `db:"registration_year" json:"registrationYear"`
	ExamType             string    `db:"exam_type" json:"examType"`
	ResultStatus         string    `db:"result_status" json:"resultStatus"`
	PassingYear          string    `db:"passing_year" json:"passingYear"`
	PassingDivisionGrade string    `db:"passing_division_grade" json:"passingDivisionGrade"`
	BoardUnivName        string    `db:"board_univ_name" json:"boardUnivName"`
	MobileNumber         string    `db:"mobile_number" json:"mobileNumber"`
	Email                string    `db:"email" json:"email"`
	CreatedAt            time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time `db:"updated_at" json:"updatedAt"`
}
