package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"podium/internal/models"
	"podium/internal/pdf"
	"podium/internal/repositories"
)

// DocumentService generates proposal and invoice PDFs for projects and keeps
// their metadata.
type DocumentService struct {
	Repo        *repositories.DocumentRepository
	ProjectRepo *repositories.ProjectRepository
	Generator   pdf.Generator
	Mailer      Mailer
}

func NewDocumentService(repo *repositories.DocumentRepository, projectRepo *repositories.ProjectRepository, generator pdf.Generator, mailer Mailer) *DocumentService {
	return &DocumentService{Repo: repo, ProjectRepo: projectRepo, Generator: generator, Mailer: mailer}
}

func invoiceNumber(projectID int) string {
	return fmt.Sprintf("PB-INV-%06d", projectID)
}

func proposalNumber(projectID int) string {
	return fmt.Sprintf("PB-PRO-%06d", projectID)
}

func (s *DocumentService) Generate(projectID int, kind string) (*models.Document, error) {
	project, err := s.ProjectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	var path, number string
	switch kind {
	case "proposal":
		number = proposalNumber(project.ID)
		path, err = s.Generator.GenerateProposal(pdf.ProposalData{
			ProjectID:   project.ID,
			ProjectName: project.ProjectName,
			ClientName:  project.ClientName,
			Company:     project.Company,
			EventDate:   project.EventDate,
			Budget:      project.Budget,
			SpeakerFee:  project.SpeakerFee,
			CreatedAt:   now,
		})
	case "invoice":
		number = invoiceNumber(project.ID)
		path, err = s.Generator.GenerateInvoice(pdf.InvoiceData{
			ProjectID:   project.ID,
			ProjectName: project.ProjectName,
			ClientName:  project.ClientName,
			Company:     project.Company,
			EventDate:   project.EventDate,
			Number:      number,
			Amount:      project.Budget,
			Commission:  project.CommissionAmount,
			CreatedAt:   now,
		})
	default:
		return nil, errors.New("kind must be proposal or invoice")
	}
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		ProjectID: project.ID,
		Kind:      kind,
		Number:    number,
		FilePath:  path,
		CreatedAt: now,
	}
	id, err := s.Repo.Create(doc)
	if err != nil {
		return nil, err
	}
	doc.ID = int(id)
	return doc, nil
}

func (s *DocumentService) GetByID(id int) (*models.Document, error) {
	return s.Repo.GetByID(id)
}

func (s *DocumentService) ListByProject(projectID int) ([]*models.Document, error) {
	return s.Repo.ListByProject(projectID)
}

// EmailInvoice sends a generated invoice to the project's client contact.
func (s *DocumentService) EmailInvoice(docID int) error {
	doc, err := s.Repo.GetByID(docID)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrNotFound
	}
	if doc.Kind != "invoice" {
		return errors.New("document is not an invoice")
	}
	project, err := s.ProjectRepo.GetByID(doc.ProjectID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrNotFound
	}
	if project.ClientEmail == "" {
		return errors.New("project has no client email")
	}
	if err := s.Mailer.SendInvoiceEmail(project.ClientEmail, project, doc.Number, doc.FilePath); err != nil {
		return err
	}
	log.Printf("[documents][invoice] emailed %s to %s", doc.Number, project.ClientEmail)
	return nil
}
