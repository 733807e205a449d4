package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator is an interface so document flows can be tested without writing
// files.
type Generator interface {
	GenerateProposal(data ProposalData) (string, error)
	GenerateInvoice(data InvoiceData) (string, error)
}

type DocumentGenerator struct {
	RootDir string // storage root, e.g. "./files"
}

type ProposalData struct {
	ProjectID   int
	ProjectName string
	ClientName  string
	Company     string
	EventDate   string
	Budget      float64
	SpeakerFee  float64
	CreatedAt   time.Time
	Filename    string // base name without path; generated when empty
}

type InvoiceData struct {
	ProjectID   int
	ProjectName string
	ClientName  string
	Company     string
	EventDate   string
	Number      string
	Amount      float64
	Commission  float64
	CreatedAt   time.Time
	Filename    string
}

func NewDocumentGenerator(rootDir string) *DocumentGenerator {
	return &DocumentGenerator{RootDir: filepath.Clean(rootDir)}
}

func (g *DocumentGenerator) GenerateProposal(data ProposalData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("proposal_project_%d.pdf", data.ProjectID)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Engagement Proposal — %s", data.ProjectName), false)
	pdf.SetAuthor("Podium Speakers", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "ENGAGEMENT PROPOSAL", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("Ref. PB-PRO-%06d  /  %s", data.ProjectID, data.CreatedAt.Format("02 Jan 2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)

	pdf.Ln(3)
	g.sectionTitle(pdf, "Engagement")
	g.kvLine(pdf, "Event", data.ProjectName)
	g.kvLine(pdf, "Client", fmt.Sprintf("%s, %s", data.ClientName, data.Company))
	g.kvLine(pdf, "Event date", data.EventDate)
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Financials")
	g.kvLine(pdf, "Total budget", fmt.Sprintf("%.2f USD", data.Budget))
	g.kvLine(pdf, "Speaker fee", fmt.Sprintf("%.2f USD", data.SpeakerFee))
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 11)
	intro := "This proposal summarizes the terms of the speaking engagement above. " +
		"Detailed terms, travel arrangements and payment schedule follow in the engagement agreement."
	pdf.MultiCell(0, 6, intro, "", "L", false)

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", fmt.Errorf("write proposal pdf: %w", err)
	}
	return absPath, nil
}

func (g *DocumentGenerator) GenerateInvoice(data InvoiceData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("invoice_project_%d.pdf", data.ProjectID)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", data.Number), false)
	pdf.SetAuthor("Podium Speakers", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("No. %s  /  %s", data.Number, data.CreatedAt.Format("02 Jan 2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)

	pdf.Ln(3)
	g.sectionTitle(pdf, "Billed to")
	g.kvLine(pdf, "Client", data.ClientName)
	g.kvLine(pdf, "Company", data.Company)
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Engagement")
	g.kvLine(pdf, "Event", data.ProjectName)
	g.kvLine(pdf, "Event date", data.EventDate)
	g.kvLine(pdf, "Amount due", fmt.Sprintf("%.2f USD", data.Amount))
	g.kvLine(pdf, "Bureau commission", fmt.Sprintf("%.2f USD", data.Commission))

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", fmt.Errorf("write invoice pdf: %w", err)
	}
	return absPath, nil
}

func (g *DocumentGenerator) ensureTarget(filename string) (string, error) {
	clean := filepath.Base(filename)
	dir := filepath.Join(g.RootDir, "documents")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create documents dir: %w", err)
	}
	return filepath.Join(dir, clean), nil
}

func (g *DocumentGenerator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func (g *DocumentGenerator) kvLine(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(55, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (g *DocumentGenerator) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(20, y+1, 190, y+1)
	pdf.SetXY(x, y+3)
}
