// Package letters renders the PDF letters HR issues from employee records:
// offer letters, experience letters and salary certificates.
package letters

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

type Generator struct {
	Dir         string
	CompanyName string
}

func NewGenerator(dir, companyName string) *Generator {
	return &Generator{Dir: dir, CompanyName: companyName}
}

type OfferDetails struct {
	Position   string
	Department string
	AnnualCTC  int64
	StartDate  time.Time
}

func (g *Generator) newLetter(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, g.CompanyName)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(40, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)
	return pdf
}

func (g *Generator) write(pdf *gofpdf.Fpdf, prefix string) (string, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s-%s.pdf", prefix, uuid.NewString())
	if err := pdf.OutputFileAndClose(filepath.Join(g.Dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// OfferLetter writes an offer letter and returns its filename inside Dir.
func (g *Generator) OfferLetter(firstName, lastName string, details OfferDetails) (string, error) {
	pdf := g.newLetter("Offer of Employment")
	pdf.Cell(0, 8, fmt.Sprintf("Dear %s %s,", firstName, lastName))
	pdf.Ln(10)
	pdf.MultiCell(0, 7, fmt.Sprintf(
		"We are pleased to offer you the position of %s in the %s department, starting %s.",
		details.Position, details.Department, details.StartDate.Format("2006-01-02")), "", "L", false)
	pdf.Ln(4)
	pdf.MultiCell(0, 7, fmt.Sprintf(
		"Your annual compensation will be INR %d (%s).",
		details.AnnualCTC, RupeesInWords(details.AnnualCTC)), "", "L", false)
	pdf.Ln(10)
	pdf.Cell(0, 8, "We look forward to working with you.")
	return g.write(pdf, "offer")
}

// ExperienceLetter certifies the employment period between join and end date.
func (g *Generator) ExperienceLetter(firstName, lastName, position string, joinDate, endDate time.Time) (string, error) {
	pdf := g.newLetter("Experience Letter")
	pdf.MultiCell(0, 7, fmt.Sprintf(
		"This is to certify that %s %s was employed with %s as %s from %s to %s.",
		firstName, lastName, g.CompanyName, position,
		joinDate.Format("2006-01-02"), endDate.Format("2006-01-02")), "", "L", false)
	pdf.Ln(4)
	pdf.MultiCell(0, 7, "During this period their conduct and performance were found to be satisfactory.", "", "L", false)
	return g.write(pdf, "experience")
}

// SalaryCertificate states the employee's current monthly salary.
func (g *Generator) SalaryCertificate(firstName, lastName, position string, monthlySalary int64) (string, error) {
	pdf := g.newLetter("Salary Certificate")
	pdf.MultiCell(0, 7, fmt.Sprintf(
		"This is to certify that %s %s, working as %s, draws a monthly salary of INR %d (%s).",
		firstName, lastName, position, monthlySalary, RupeesInWords(monthlySalary)), "", "L", false)
	return g.write(pdf, "salary-certificate")
}
