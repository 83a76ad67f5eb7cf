package repository

import (
	"context"
	"sync"

	"github.com/vfg2006/vehicle-sales-api/internal/domain"
)

type memoryVehicleStore struct {
	mu       sync.RWMutex
	vehicles []domain.Vehicle
}

func NewMemoryVehicleStore() VehicleStore {
	return &memoryVehicleStore{
		vehicles: make([]domain.Vehicle, 0),
	}
}

func (m *memoryVehicleStore) Replace(vehicles []domain.Vehicle) {
	snapshot := make([]domain.Vehicle, len(vehicles))
	copy(snapshot, vehicles)

	m.mu.Lock()
	m.vehicles = snapshot
	m.mu.Unlock()
}

// List devolve uma cópia; quem chama pode ordenar ou filtrar à vontade
func (m *memoryVehicleStore) List(ctx context.Context) []domain.Vehicle {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make([]domain.Vehicle, len(m.vehicles))
	copy(snapshot, m.vehicles)
	return snapshot
}

func (m *memoryVehicleStore) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	vehicle := m.vehicles[i]
	return &vehicle, nil
}

func (m *memoryVehicleStore) Add(ctx context.Context, vehicle domain.Vehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vehicles = append(m.vehicles, vehicle)
	return nil
}

func (m *memoryVehicleStore) Save(ctx context.Context, vehicle domain.Vehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(vehicle.ID)
	if i < 0 {
		return ErrNotFound
	}

	m.vehicles[i] = vehicle
	return nil
}

func (m *memoryVehicleStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	m.vehicles = append(m.vehicles[:i], m.vehicles[i+1:]...)
	return nil
}

// indexOf exige o lock já adquirido
func (m *memoryVehicleStore) indexOf(id string) int {
	for i := range m.vehicles {
		if m.vehicles[i].ID == id {
			return i
		}
	}
	return -1
}
