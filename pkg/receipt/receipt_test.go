package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/clc-api/internal/models"
)

func paidApplication() (*models.Application, *models.Student) {
	paymentID := "pay_123"
	amount := 2.00
	mode := "Online"
	paidAt := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	app := &models.Application{
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
		MarksheetURL:  "https://files.example.com/abc.jpg",
		PaymentID:     &paymentID,
		PaymentAmount: &amount,
		PaymentMode:   &mode,
		PaymentDate:   &paidAt,
		CreatedAt:     created,
		UpdatedAt:     paidAt,
	}
	student := &models.Student{
		ID:          "stu-1",
		ReferenceID: "REF001",
		StudentName: "RAHUL KUMAR",
		FatherName:  "FATHER",
		ClassName:   "B.A.",
		ExamRollNo:  "190001",
	}
	return app, student
}

func TestBuilderBuildPaidApplication(t *testing.T) {
	builder := NewBuilder(Institution{Name: "GORELAL MEHTA COLLEGE, BANMANKHI, PURNEA"})
	app, student := paidApplication()

	r := builder.Build(app, student)
	assert.Equal(t, "REF001", r.ReferenceID)
	assert.Equal(t, "01-03-2024", r.ApplyDate)
	assert.Equal(t, "05-03-2024", r.PaymentDate)
	assert.Equal(t, "pay_123", r.PaymentID)
	assert.Equal(t, "₹ 2.00", r.Amount)
	assert.Equal(t, "Two Rupees Only", r.AmountInWords)
	assert.Equal(t, "Online", r.PaymentMode)
	assert.Equal(t, "VILL/AT- Banmankhi, PO- Banmankhi Bazar, PS- Banmankhi, DIST.- Purnea, STATE- Bihar, PIN- 854202", r.Address)
	assert.NotEmpty(t, r.Note)
	assert.NotEmpty(t, r.Footnote)
}

func TestBuilderBuildDeterministic(t *testing.T) {
	builder := NewBuilder(Institution{Name: "GORELAL MEHTA COLLEGE, BANMANKHI, PURNEA"})
	app, student := paidApplication()

	first := builder.Build(app, student)
	second := builder.Build(app, student)
	assert.Equal(t, first, second)
}

func TestBuilderBuildAbsentPaymentFields(t *testing.T) {
	builder := NewBuilder(Institution{})
	app, student := paidApplication()
	app.PaymentID = nil
	app.PaymentAmount = nil
	app.PaymentMode = nil
	app.PaymentDate = nil

	r := builder.Build(app, student)
	assert.Equal(t, "N/A", r.PaymentID)
	assert.Equal(t, "N/A", r.Amount)
	assert.Equal(t, "N/A", r.AmountInWords)
	assert.Equal(t, "N/A", r.PaymentMode)
	assert.Equal(t, "N/A", r.PaymentDate)
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "31-12-2024", FormatDate(&ts))
	assert.Equal(t, "N/A", FormatDate(nil))

	var zero time.Time
	assert.Equal(t, "N/A", FormatDate(&zero))
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "Two Rupees Only", AmountInWords(2.00))
	assert.Equal(t, "One Hundred and Nine Rupees and Seventy Five Paisa Only", AmountInWords(109.75))
	assert.Equal(t, "50.00 Only", AmountInWords(50.00))
}

func TestRenderPDF(t *testing.T) {
	builder := NewBuilder(Institution{Name: "GORELAL MEHTA COLLEGE, BANMANKHI, PURNEA"})
	app, student := paidApplication()
	r := builder.Build(app, student)

	pdfBytes, err := RenderPDF(r)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdfBytes), "%PDF"))
	assert.Greater(t, len(pdfBytes), 1000)
}
