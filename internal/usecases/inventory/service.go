package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/messaging"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/repository"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
	"github.com/vfg2006/vehicle-sales-api/pkg/apiErrors"
	"github.com/vfg2006/vehicle-sales-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const (
	DefaultPerPage = 10
	MaxPerPage     = 100

	// FilterAll desativa o filtro de status ou marca
	FilterAll = "all"
)

type Manager interface {
	LoadVehicles(ctx context.Context) error
	ListVehicles(ctx context.Context, filters domain.VehicleFilters) (*domain.VehiclePage, error)
	ListBrands(ctx context.Context) []string
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	CreateVehicle(ctx context.Context, req domain.CreateVehicleRequest) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, req domain.UpdateVehicleRequest) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
}

type Service struct {
	vehicleRepo repository.VehicleRepository
	store       repository.VehicleStore
	notifier    messaging.VehicleNotifier

	now             func() time.Time
	newID           func() string
	newRegistration func() (string, error)
}

func NewService(
	vehicleRepo repository.VehicleRepository,
	store repository.VehicleStore,
	notifier messaging.VehicleNotifier,
) *Service {
	if notifier == nil {
		notifier = messaging.NewLogNotifier(nil)
	}

	return &Service{
		vehicleRepo:     vehicleRepo,
		store:           store,
		notifier:        notifier,
		now:             time.Now,
		newID:           utils.GenerateID,
		newRegistration: utils.GenerateRegistration,
	}
}

// LoadVehicles substitui o estoque em memória pelo conteúdo da fonte de dados
func (s *Service) LoadVehicles(ctx context.Context) error {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx)
	if err != nil {
		return fmt.Errorf("error loading vehicles: %w", err)
	}

	s.store.Replace(vehicles)

	logrus.WithField("vehicles", len(vehicles)).Info("Estoque de veículos carregado")
	return nil
}

func (s *Service) ListVehicles(ctx context.Context, filters domain.VehicleFilters) (*domain.VehiclePage, error) {
	page, perPage := normalizePagination(filters.Page, filters.PerPage)

	filtered := make([]domain.Vehicle, 0)
	totalValue := 0.0

	search := strings.ToLower(filters.Search)
	for _, vehicle := range s.store.List(ctx) {
		if !matches(vehicle, search, filters.Status, filters.Brand) {
			continue
		}

		filtered = append(filtered, vehicle)
		totalValue += vehicle.Value
	}

	result := &domain.VehiclePage{
		Items:      []domain.Vehicle{},
		Page:       page,
		PerPage:    perPage,
		TotalItems: len(filtered),
		TotalPages: (len(filtered) + perPage - 1) / perPage,
		TotalValue: utils.RoundWithTwoDecimalPlace(totalValue),
	}

	start := (page - 1) * perPage
	if start >= len(filtered) {
		return result, nil
	}

	end := min(start+perPage, len(filtered))
	result.Items = filtered[start:end]
	result.StartIndex = start + 1
	result.EndIndex = end

	return result, nil
}

func normalizePagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}

	switch {
	case perPage <= 0:
		perPage = DefaultPerPage
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	}

	return page, perPage
}

// matches aplica a busca (sem diferenciar maiúsculas) e os filtros exatos de status e marca
func matches(vehicle domain.Vehicle, search, status, brand string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(vehicle.Registration), search) &&
		!strings.Contains(strings.ToLower(vehicle.Brand), search) &&
		!strings.Contains(strings.ToLower(vehicle.Model), search) {
		return false
	}

	if status != "" && status != FilterAll && string(vehicle.Status) != status {
		return false
	}

	if brand != "" && brand != FilterAll && vehicle.Brand != brand {
		return false
	}

	return true
}

// ListBrands retorna as marcas distintas do estoque em ordem alfabética
func (s *Service) ListBrands(ctx context.Context) []string {
	seen := make(map[string]struct{})
	brands := make([]string, 0)

	for _, vehicle := range s.store.List(ctx) {
		if _, ok := seen[vehicle.Brand]; ok {
			continue
		}
		seen[vehicle.Brand] = struct{}{}
		brands = append(brands, vehicle.Brand)
	}

	sort.Strings(brands)
	return brands
}

func (s *Service) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	if id == "" {
		return nil, NewInventoryError(ErrVehicleIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	vehicle, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(id)
		}
		return nil, err
	}

	return vehicle, nil
}

func (s *Service) CreateVehicle(ctx context.Context, req domain.CreateVehicleRequest) (*domain.Vehicle, error) {
	if req.Status == "" {
		req.Status = domain.VehicleStatusAvailable
	}

	if err := validateEnums(&req.Category, &req.Status); err != nil {
		return nil, err
	}

	if req.Registration == "" {
		registration, err := s.newRegistration()
		if err != nil {
			return nil, NewInventoryError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
		}
		req.Registration = registration
	}

	now := s.now()
	vehicle := domain.Vehicle{
		ID:           s.newID(),
		Registration: req.Registration,
		Brand:        req.Brand,
		Model:        req.Model,
		Value:        req.Value,
		Year:         req.Year,
		Category:     req.Category,
		Color:        req.Color,
		Mileage:      req.Mileage,
		Status:       req.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Add(ctx, vehicle); err != nil {
		return nil, err
	}

	s.publish(ctx, domain.VehicleCreated, vehicle.ID, &vehicle)
	return &vehicle, nil
}

// UpdateVehicle aplica apenas os campos informados e marca updatedAt
func (s *Service) UpdateVehicle(ctx context.Context, id string, req domain.UpdateVehicleRequest) (*domain.Vehicle, error) {
	vehicle, err := s.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateEnums(req.Category, req.Status); err != nil {
		err.VehicleID = id
		return nil, err
	}

	applyUpdate(vehicle, req)
	vehicle.UpdatedAt = s.now()

	if err := s.store.Save(ctx, *vehicle); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(id)
		}
		return nil, err
	}

	s.publish(ctx, domain.VehicleUpdated, vehicle.ID, vehicle)
	return vehicle, nil
}

func applyUpdate(vehicle *domain.Vehicle, req domain.UpdateVehicleRequest) {
	if req.Registration != nil {
		vehicle.Registration = *req.Registration
	}
	if req.Brand != nil {
		vehicle.Brand = *req.Brand
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Value != nil {
		vehicle.Value = *req.Value
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Category != nil {
		vehicle.Category = *req.Category
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}
	if req.Status != nil {
		vehicle.Status = *req.Status
	}
}

// validateEnums só confere os valores conhecidos de categoria e status; nil é ignorado
func validateEnums(category *domain.VehicleCategory, status *domain.VehicleStatus) *InventoryError {
	if category != nil && !category.IsValid() {
		return NewInventoryError(ErrInvalidVehicleData, apiErrors.ErrInvalidVehicleData, fmt.Sprintf("categoria desconhecida %q", *category))
	}
	if status != nil && !status.IsValid() {
		return NewInventoryError(ErrInvalidVehicleData, apiErrors.ErrInvalidVehicleData, fmt.Sprintf("status desconhecido %q", *status))
	}
	return nil
}

func (s *Service) DeleteVehicle(ctx context.Context, id string) error {
	if id == "" {
		return NewInventoryError(ErrVehicleIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(id)
		}
		return err
	}

	s.publish(ctx, domain.VehicleDeleted, id, nil)
	return nil
}

// publish nunca falha a operação: a alteração já foi aplicada em memória
func (s *Service) publish(ctx context.Context, eventType domain.VehicleEventType, vehicleID string, vehicle *domain.Vehicle) {
	event := domain.VehicleEvent{
		Type:      eventType,
		VehicleID: vehicleID,
		Vehicle:   vehicle,
		Timestamp: s.now(),
	}

	if err := s.notifier.Publish(ctx, event); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event":      eventType,
			"vehicle_id": vehicleID,
		}).Error("Erro ao publicar evento de veículo")
	}
}
