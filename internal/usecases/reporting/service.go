package reporting

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/cache"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/repository"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/aggregating"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Reporter interface {
	LoadSales(ctx context.Context) error
	GetDashboard(ctx context.Context) (*domain.DashboardSummary, error)
	GetQuarterlySummary(ctx context.Context) ([]domain.QuarterlySummary, error)
	GetYearlyComparison(ctx context.Context) ([]domain.YearlyComparison, error)
	GetBrandPerformance(ctx context.Context) ([]domain.BrandPerformance, error)
	GetCategoryBreakdown(ctx context.Context) ([]domain.CategoryBreakdown, error)
	GetReport(ctx context.Context) (*domain.SalesReport, error)
	ExportReportCSV(ctx context.Context, w io.Writer) error
	WarmUp(ctx context.Context) error
}

// Service calcula os indicadores sobre os registros carregados na inicialização.
// Os registros nunca mudam depois de LoadSales, então as agregações são refeitas sob demanda
// e só o resumo do painel passa pelo cache.
type Service struct {
	salesRepo      repository.SalesRepository
	dashboardCache cache.DashboardCache

	mu      sync.RWMutex
	records []domain.SalesRecord
	loaded  bool

	now func() time.Time
}

func NewService(salesRepo repository.SalesRepository, dashboardCache cache.DashboardCache) *Service {
	if dashboardCache == nil {
		dashboardCache = cache.NewNoopDashboardCache()
	}

	return &Service{
		salesRepo:      salesRepo,
		dashboardCache: dashboardCache,
		now:            time.Now,
	}
}

func (s *Service) LoadSales(ctx context.Context) error {
	records, err := s.salesRepo.ListSales(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoadSales, err)
	}

	s.mu.Lock()
	s.records = records
	s.loaded = true
	s.mu.Unlock()

	if err := s.dashboardCache.Invalidate(ctx); err != nil {
		logrus.WithError(err).Warn("Erro ao invalidar cache do painel após carregar vendas")
	}

	logrus.WithField("records", len(records)).Info("Registros de venda carregados")
	return nil
}

func (s *Service) snapshot() ([]domain.SalesRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, ErrSalesNotLoaded
	}
	return s.records, nil
}

func (s *Service) GetDashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	summary, found, err := s.dashboardCache.GetSummary(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao ler resumo do painel do cache")
	}
	if found {
		return summary, nil
	}

	records, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	summary = buildDashboard(records, s.now())

	if err := s.dashboardCache.SetSummary(ctx, summary); err != nil {
		logrus.WithError(err).Warn("Erro ao gravar resumo do painel no cache")
	}

	return summary, nil
}

func (s *Service) GetQuarterlySummary(ctx context.Context) ([]domain.QuarterlySummary, error) {
	records, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return aggregating.QuarterlySummary(records), nil
}

func (s *Service) GetYearlyComparison(ctx context.Context) ([]domain.YearlyComparison, error) {
	records, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return aggregating.YearlyComparison(records), nil
}

func (s *Service) GetBrandPerformance(ctx context.Context) ([]domain.BrandPerformance, error) {
	records, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return aggregating.BrandPerformance(records), nil
}

func (s *Service) GetCategoryBreakdown(ctx context.Context) ([]domain.CategoryBreakdown, error) {
	records, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return aggregating.CategoryBreakdown(records), nil
}

func (s *Service) GetReport(ctx context.Context) (*domain.SalesReport, error) {
	records, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return buildReport(records, s.now()), nil
}

func (s *Service) ExportReportCSV(ctx context.Context, w io.Writer) error {
	report, err := s.GetReport(ctx)
	if err != nil {
		return err
	}
	return WriteReportCSV(w, report)
}

// WarmUp descarta o resumo em cache e grava um recalculado.
// Diferente de GetDashboard, falhas do cache são devolvidas para o agendador registrar.
func (s *Service) WarmUp(ctx context.Context) error {
	records, err := s.snapshot()
	if err != nil {
		return err
	}

	if err := s.dashboardCache.Invalidate(ctx); err != nil {
		return err
	}

	return s.dashboardCache.SetSummary(ctx, buildDashboard(records, s.now()))
}
