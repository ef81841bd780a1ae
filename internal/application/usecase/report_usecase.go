package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/sweetshop-api/internal/domain/entity"
	"github.com/jhoicas/sweetshop-api/internal/domain/repository"
)

// StockReportGenerator puerto para la generación del PDF del reporte de stock.
// Lo implementa pdf.MarotoReportGenerator; la interfaz mantiene a maroto
// fuera de la capa de aplicación.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, sweets []*entity.Sweet, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase genera el reporte de inventario para administración.
type ReportUseCase struct {
	repo repository.SweetRepository
	gen  StockReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.SweetRepository, gen StockReportGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, gen: gen}
}

// StockReport arma el PDF con el catálogo completo y su stock actual.
func (uc *ReportUseCase) StockReport(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateStockReport(ctx, list, time.Now())
}
