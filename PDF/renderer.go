package PDF

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Models"
	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Planner"
)

// Layout constants in millimeters (A4 portrait).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginTop    = 15.0
	marginBottom = 18.0
	contentWidth = pageWidth - 2*marginLeft
	lineHeight   = 5.0
	bannerHeight = 8.0
	sectionGap   = 4.0
	bodyIndent   = 2.0
)

const printableBottom = pageHeight - marginBottom

type bannerColor struct{ r, g, b int }

type section struct {
	title string
	body  string
	color bannerColor
}

var fileNameUnsafe = regexp.MustCompile(`[^a-z0-9_]+`)

// DocumentFileName derives the artifact name from the patient's name
// (whitespace replaced, lower-cased) plus a date stamp. Anything outside
// [a-z0-9_] is stripped so the name can never carry path separators into
// the documents directory join.
func DocumentFileName(patientName string, at time.Time) string {
	name := strings.ToLower(strings.Join(strings.Fields(patientName), "_"))
	name = fileNameUnsafe.ReplaceAllString(name, "")
	if name == "" {
		name = "patient"
	}
	return fmt.Sprintf("%s_treatment_plan_%s.pdf", name, at.Format("2006-01-02"))
}

// RenderTreatmentPlan lays out the patient information and the six plan
// sections into a paginated PDF at path.
func RenderTreatmentPlan(patient Models.PatientData, plan Models.TreatmentPlan, path string) error {
	pdf := buildDocument(patient, plan)
	return pdf.OutputFileAndClose(path)
}

// buildDocument runs the single-pass layout. A vertical cursor is threaded
// explicitly through every layout call; each section is measured in full
// before any of its draw calls, so page breaks always precede the block that
// triggered them.
func buildDocument(patient Models.PatientData, plan Models.TreatmentPlan) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	y := drawHeader(pdf, tr)
	for _, s := range documentSections(patient, plan) {
		y = drawSection(pdf, tr, s, y)
	}
	drawFooter(pdf, tr)
	return pdf
}

func documentSections(patient Models.PatientData, plan Models.TreatmentPlan) []section {
	return []section{
		{"Patient Information", patientSummary(patient), bannerColor{84, 110, 138}},
		{"Diagnosis", plan.Diagnosis, bannerColor{41, 128, 185}},
		{"Prognosis", plan.Prognosis, bannerColor{142, 68, 173}},
		{"Phase I Therapy (Non-Surgical)", plan.PhaseI, bannerColor{39, 174, 96}},
		{"Phase II Therapy (Surgical)", plan.PhaseII, bannerColor{211, 84, 0}},
		{"Maintenance", plan.Maintenance, bannerColor{22, 160, 133}},
		{"Additional Recommendations", plan.AdditionalRecommendations, bannerColor{127, 140, 141}},
	}
}

func patientSummary(patient Models.PatientData) string {
	symptoms := "None reported"
	if active := Planner.ActiveSymptoms(patient.Symptoms); len(active) > 0 {
		symptoms = strings.Join(active, ", ")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", patient.Name)
	fmt.Fprintf(&b, "Age: %d    Gender: %s\n", patient.Age, patient.Gender)
	fmt.Fprintf(&b, "Medical History: %s\n", patient.MedicalHistory)
	fmt.Fprintf(&b, "Dental History: %s\n", patient.DentalHistory)
	fmt.Fprintf(&b, "Symptoms: %s\n", symptoms)
	fmt.Fprintf(&b, "Probing Depths: %s\n", patient.PeriodontalFindings.ProbingDepths)
	fmt.Fprintf(&b, "Gingival Recession: %s\n", patient.PeriodontalFindings.GingivalRecession)
	fmt.Fprintf(&b, "Mobility Grade: %s\n", patient.PeriodontalFindings.MobilityGrade)
	fmt.Fprintf(&b, "Radiographic Bone Loss: %s", patient.PeriodontalFindings.RadiographicBoneLoss)
	return b.String()
}

// drawSection measures the wrapped body first; if the whole block would
// overrun the printable area the page break happens before the banner is
// drawn. Bodies taller than a full page continue across page breaks decided
// line by line, still ahead of each draw call.
func drawSection(pdf *gofpdf.Fpdf, tr func(string) string, s section, y float64) float64 {
	pdf.SetFont("Helvetica", "", 10)
	lines := wrapBody(pdf, tr, s.body)
	estimated := bannerHeight + 2 + float64(len(lines))*lineHeight
	if y+estimated > printableBottom {
		y = breakPage(pdf, tr)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(s.color.r, s.color.g, s.color.b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentWidth, bannerHeight, tr("  "+s.title), "", 0, "L", true, 0, "")
	y += bannerHeight + 2

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	for _, line := range lines {
		if y+lineHeight > printableBottom {
			y = breakPage(pdf, tr)
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(51, 51, 51)
		}
		pdf.SetXY(marginLeft+bodyIndent, y)
		pdf.CellFormat(contentWidth-2*bodyIndent, lineHeight, line, "", 0, "L", false, 0, "")
		y += lineHeight
	}
	return y + sectionGap
}

func wrapBody(pdf *gofpdf.Fpdf, tr func(string) string, body string) []string {
	var lines []string
	for _, paragraph := range strings.Split(body, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, pdf.SplitText(tr(paragraph), contentWidth-2*bodyIndent)...)
	}
	return lines
}

func drawHeader(pdf *gofpdf.Fpdf, tr func(string) string) float64 {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetFillColor(33, 47, 61)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(0, 0)
	pdf.CellFormat(pageWidth, 16, tr("Periodontal Treatment Plan"), "", 0, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, 18)
	pdf.CellFormat(contentWidth, 5, time.Now().Format("January 2, 2006"), "", 0, "R", false, 0, "")
	return marginTop + 12
}

func drawFooter(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-12)
	pdf.CellFormat(contentWidth, 5, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "C", false, 0, "")
}

func breakPage(pdf *gofpdf.Fpdf, tr func(string) string) float64 {
	drawFooter(pdf, tr)
	pdf.AddPage()
	return drawHeader(pdf, tr)
}
