package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/generator"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
)

func TestListSalesQuery(t *testing.T) {
	query, args, err := listSalesQuery()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT s.id, s.year, s.quarter, s.month, s.brand, s.model, s.units_sold, s.revenue, s.category FROM vehicle_sales s ORDER BY s.seq ASC",
		query,
	)
	assert.Empty(t, args)
}

func TestListVehiclesQuery(t *testing.T) {
	query, args, err := listVehiclesQuery()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT v.id, v.registration, v.brand, v.model, v.value, v.year, v.category, v.color, v.mileage, v.status, v.created_at, v.updated_at FROM vehicles v ORDER BY v.brand ASC, v.seq ASC",
		query,
	)
	assert.Empty(t, args)
}

func TestGeneratedRepositories(t *testing.T) {
	ctx := context.Background()

	sales, err := NewGeneratedSalesRepository(42).ListSales(ctx)
	require.NoError(t, err)
	assert.Equal(t, generator.Sales(42), sales)

	vehicles, err := NewGeneratedVehicleRepository(42, 12).ListVehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 12)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = NewGeneratedSalesRepository(42).ListSales(canceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func newVehicle(id, brand string) domain.Vehicle {
	return domain.Vehicle{ID: id, Brand: brand, Status: domain.VehicleStatusAvailable}
}

func TestMemoryVehicleStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryVehicleStore()

	initial := []domain.Vehicle{newVehicle("1", "Audi"), newVehicle("2", "BMW")}
	store.Replace(initial)
	initial[0].Brand = "alterado fora do store"

	t.Run("GetByID devolve cópia", func(t *testing.T) {
		vehicle, err := store.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Audi", vehicle.Brand)

		vehicle.Brand = "Ford"
		again, err := store.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Audi", again.Brand)
	})

	t.Run("Id inexistente", func(t *testing.T) {
		_, err := store.GetByID(ctx, "404")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, store.Save(ctx, newVehicle("404", "Ford")), ErrNotFound)
		assert.ErrorIs(t, store.Delete(ctx, "404"), ErrNotFound)
	})

	t.Run("Add, Save e Delete", func(t *testing.T) {
		require.NoError(t, store.Add(ctx, newVehicle("3", "Ford")))

		updated := newVehicle("2", "BMW")
		updated.Status = domain.VehicleStatusSold
		require.NoError(t, store.Save(ctx, updated))

		require.NoError(t, store.Delete(ctx, "1"))

		vehicles := store.List(ctx)
		require.Len(t, vehicles, 2)
		assert.Equal(t, "2", vehicles[0].ID)
		assert.Equal(t, domain.VehicleStatusSold, vehicles[0].Status)
		assert.Equal(t, "3", vehicles[1].ID)
	})
}

func TestMemoryVehicleStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryVehicleStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Add(ctx, newVehicle(fmt.Sprintf("v-%d", i), "Toyota"))
		}(i)
		go func() {
			defer wg.Done()
			_ = store.List(ctx)
		}()
	}
	wg.Wait()

	assert.Len(t, store.List(ctx), 50)
}
