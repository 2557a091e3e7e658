package receipt

import (
	"fmt"
	"math"
	"time"

	"github.com/noah-isme/clc-api/internal/models"
)

const (
	title    = "College Leaving Certificate"
	subtitle = "Application cum Fee Receipt (Student Copy)"

	noteText = "CLC Application Form अप्लाई करने के बाद 3 कार्य दिवस के उपरांत महाविद्यालय आ कर CLC प्राप्त कर लें, " +
		"CLC अप्लाई करने के समय जो MOBILE NUMBER दिए हैं उसको अपने पास रखें CLC बनाने के क्रम में अगर कोई NO DUES " +
		"सम्बंधित सूचना देना होगा तो महाविद्यालय से PHONE CALL किया जा सकता है।"
	footnoteText = "This Application cum Fee Receipt is computer generated and does not require physical signature."
)

// Institution identifies the college on the printed receipt.
type Institution struct {
	Name    string `json:"name"`
	Unit    string `json:"unit"`
	LogoURL string `json:"logo_url,omitempty"`
}

// Receipt is the fully formatted, printable view of a paid application.
type Receipt struct {
	Institution Institution `json:"institution"`
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`

	ReferenceID string `json:"reference_id"`
	ApplyDate   string `json:"apply_date"`

	StudentName          string `json:"student_name"`
	FatherName           string `json:"father_name"`
	MotherName           string `json:"mother_name"`
	ClassName            string `json:"class"`
	ClassRollNo          string `json:"class_roll_no"`
	SessionName          string `json:"session"`
	ExamRollNo           string `json:"exam_roll_no"`
	RegistrationNo       string `json:"registration_no"`
	RegistrationYear     string `json:"registration_year"`
	ExamType             string `json:"exam_type"`
	ResultStatus         string `json:"result_status"`
	PassingYear          string `json:"passing_year"`
	PassingDivisionGrade string `json:"passing_division_grade"`
	BoardUnivName        string `json:"board_univ_name"`
	MobileNumber         string `json:"mobile_number"`
	Email                string `json:"email"`

	PaymentID     string `json:"payment_id"`
	PaymentDate   string `json:"payment_date"`
	Amount        string `json:"amount"`
	AmountInWords string `json:"amount_in_words"`
	PaymentMode   string `json:"payment_mode"`

	Address  string `json:"address"`
	Note     string `json:"note"`
	Footnote string `json:"footnote"`
}

// Builder formats applications into receipts for a fixed institution.
type Builder struct {
	institution Institution
}

// NewBuilder constructs a receipt builder.
func NewBuilder(inst Institution) *Builder {
	return &Builder{institution: inst}
}

// Build deterministically formats a paid application joined with its owning
// student. It performs no I/O and never fails; absent optional values render
// as "N/A".
func (b *Builder) Build(app *models.Application, student *models.Student) Receipt {
	r := Receipt{
		Institution: b.institution,
		Title:       title,
		Subtitle:    subtitle,

		ReferenceID: student.ReferenceID,
		ApplyDate:   FormatDate(&app.CreatedAt),

		StudentName:          student.StudentName,
		FatherName:           student.FatherName,
		MotherName:           student.MotherName,
		ClassName:            student.ClassName,
		ClassRollNo:          student.ClassRollNo,
		SessionName:          student.SessionName,
		ExamRollNo:           student.ExamRollNo,
		RegistrationNo:       student.RegistrationNo,
		RegistrationYear:     student.RegistrationYear,
		ExamType:             student.ExamType,
		ResultStatus:         student.ResultStatus,
		PassingYear:          student.PassingYear,
		PassingDivisionGrade: student.PassingDivisionGrade,
		BoardUnivName:        student.BoardUnivName,
		MobileNumber:         student.MobileNumber,
		Email:                student.Email,

		PaymentDate: FormatDate(app.PaymentDate),
		PaymentID:   orNA(app.PaymentID),
		PaymentMode: orNA(app.PaymentMode),

		Address:  FormatAddress(app.Address),
		Note:     noteText,
		Footnote: footnoteText,
	}

	if app.PaymentAmount != nil {
		r.Amount = fmt.Sprintf("₹ %.2f", *app.PaymentAmount)
		r.AmountInWords = AmountInWords(*app.PaymentAmount)
	} else {
		r.Amount = "N/A"
		r.AmountInWords = "N/A"
	}

	return r
}

// FormatDate renders a timestamp as DD-MM-YYYY, or "N/A" when absent.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.Format("02-01-2006")
}

// FormatAddress concatenates the six address sub-fields into the single
// line printed on the certificate.
func FormatAddress(a models.Address) string {
	return fmt.Sprintf("VILL/AT- %s, PO- %s, PS- %s, DIST.- %s, STATE- %s, PIN- %s",
		a.Village, a.PostOffice, a.PoliceStation, a.District, a.State, a.PinCode)
}

// AmountInWords spells out the known fee amounts; anything else falls back
// to a plain numeric rendering.
func AmountInWords(amount float64) string {
	switch int(math.Round(amount * 100)) {
	case 200:
		return "Two Rupees Only"
	case 10975:
		return "One Hundred and Nine Rupees and Seventy Five Paisa Only"
	default:
		return fmt.Sprintf("%.2f Only", amount)
	}
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
