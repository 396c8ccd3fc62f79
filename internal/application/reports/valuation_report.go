// Package reports exportación de la valorización a planilla y PDF
// (página "Reports" de la aplicación).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

// ValuationReport datos del reporte: agregado global más el detalle por proyecto.
type ValuationReport struct {
	GeneratedAt time.Time
	Summary     repository.ValuationSummary
	Projects    []repository.ProjectValuation
}

// ExcelGenerator puerto del render XLSX.
type ExcelGenerator interface {
	GenerateValuationXLSX(report *ValuationReport) ([]byte, error)
}

// PDFGenerator puerto del render PDF.
type PDFGenerator interface {
	GenerateValuationPDF(report *ValuationReport) ([]byte, error)
}

// UseCase arma el reporte de valorización y lo renderiza.
type UseCase struct {
	valRepo repository.ValuationRepository
	excel   ExcelGenerator
	pdf     PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(valRepo repository.ValuationRepository, excel ExcelGenerator, pdf PDFGenerator) *UseCase {
	return &UseCase{valRepo: valRepo, excel: excel, pdf: pdf}
}

func (uc *UseCase) buildReport(ctx context.Context) (*ValuationReport, error) {
	summary, err := uc.valRepo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: agregado global: %w", err)
	}
	projects, err := uc.valRepo.AllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: valorización por proyecto: %w", err)
	}
	report := &ValuationReport{
		GeneratedAt: time.Now(),
		Summary:     *summary,
	}
	for _, p := range projects {
		report.Projects = append(report.Projects, *p)
	}
	return report, nil
}

// ValuationXLSX genera el reporte en formato XLSX.
func (uc *UseCase) ValuationXLSX(ctx context.Context) ([]byte, error) {
	report, err := uc.buildReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.excel.GenerateValuationXLSX(report)
}

// ValuationPDF genera el reporte en formato PDF.
func (uc *UseCase) ValuationPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.buildReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateValuationPDF(report)
}
