package app

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"companyscrape/internal/normalize"
)

// writeSummaryPDF renders a minimal one-section-per-company PDF. This is a
// convenience export for passing results around; the JSON file remains the
// canonical output.
func writeSummaryPDF(records []normalize.Company, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	for i, c := range records {
		if i > 0 {
			pdf.Ln(8)
		}
		title := c.CompanyName
		if title == "" {
			title = c.UniversalNameID
		}
		if title == "" {
			title = c.SourceURL
		}
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)

		writeFact(pdf, "Industry", c.Industry)
		writeFact(pdf, "Headquarters", c.Headquarters)
		writeFact(pdf, "Company size", c.CompanySize)
		writeFact(pdf, "Founded", c.Founded)
		if c.FollowerCount > 0 {
			writeFact(pdf, "Followers", fmt.Sprint(c.FollowerCount))
		}
		if c.Website != "" {
			pdf.Write(5, "Website: ")
			pdf.WriteLinkString(5, c.Website, c.Website)
			pdf.Ln(6)
		}
		if c.About != "" {
			pdf.Ln(2)
			pdf.MultiCell(0, 5, c.About, "", "L", false)
		}
		if len(c.Employees) > 0 {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 6, "People", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			for _, e := range c.Employees {
				line := e.Name
				if e.Position != "" {
					line += " - " + e.Position
				}
				pdf.MultiCell(0, 5, line, "", "L", false)
			}
		}
		if c.SourceURL != "" {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "I", 9)
			pdf.WriteLinkString(4, c.SourceURL, c.SourceURL)
			pdf.Ln(5)
			pdf.SetFont("Helvetica", "", 11)
		}
	}

	return pdf.OutputFileAndClose(outPath)
}

func writeFact(pdf *gofpdf.Fpdf, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	pdf.CellFormat(0, 6, label+": "+value, "", 1, "L", false, 0, "")
}
