package receipt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

type pdfRow struct {
	label string
	value string
}

// RenderPDF produces an A4 document mirroring the printable receipt table.
// Core PDF fonts cannot encode the rupee sign or the Hindi note, so the
// amount uses the "Rs." prefix and only the English footnote is printed.
func RenderPDF(r Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, strings.ToUpper(r.Institution.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, r.Institution.Unit, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, r.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, r.Subtitle, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	amount := strings.Replace(r.Amount, "₹", "Rs.", 1)
	rows := []pdfRow{
		{"Reference Id", r.ReferenceID},
		{"Apply Date", r.ApplyDate},
		{"Student Name", r.StudentName},
		{"Father's Name", r.FatherName},
		{"Mother's Name", r.MotherName},
		{"Class", r.ClassName},
		{"Class Roll No.", r.ClassRollNo},
		{"Session", r.SessionName},
		{"Exam Roll No.", r.ExamRollNo},
		{"Registration No.", r.RegistrationNo},
		{"Registration Year", r.RegistrationYear},
		{"Exam Type", r.ExamType},
		{"Result Status", r.ResultStatus},
		{"Passing Year", r.PassingYear},
		{"Passing Division/Grade", r.PassingDivisionGrade},
		{"Board/Univ. Name", r.BoardUnivName},
		{"Mobile Number", r.MobileNumber},
		{"Email Id", r.Email},
		{"Payment Id", r.PaymentID},
		{"Payment Date", r.PaymentDate},
		{"Total Amount", fmt.Sprintf("%s (%s)", amount, r.AmountInWords)},
		{"Payment Mode", r.PaymentMode},
		{"Address", r.Address},
	}

	labelWidth := 55.0
	valueWidth := 125.0
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(labelWidth, 7, row.label, "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(valueWidth, 7, row.value, "1", 1, "L", false, 0, "")
	}

	pdf.Ln(5)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, r.Footnote, "", "C", false)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
