package generator

import (
	"fmt"
	"regexp"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
)

func TestQuarterOf(t *testing.T) {
	expected := []int{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4}
	for monthIndex, quarter := range expected {
		assert.Equal(t, quarter, QuarterOf(monthIndex), Months[monthIndex])
	}
}

func TestSales(t *testing.T) {
	records := Sales(42)

	t.Run("Mesma seed gera os mesmos registros", func(t *testing.T) {
		assert.Equal(t, records, Sales(42))
		assert.NotEqual(t, records, Sales(7))
	})

	t.Run("Entre 20 e 40 registros por mês", func(t *testing.T) {
		perMonth := make(map[string]int)
		for _, record := range records {
			perMonth[fmt.Sprintf("%s/%d", record.Month, record.Year)]++
		}

		require.Len(t, perMonth, (LastYear-FirstYear+1)*len(Months))
		for month, count := range perMonth {
			assert.GreaterOrEqual(t, count, 20, month)
			assert.LessOrEqual(t, count, 40, month)
		}
	})

	t.Run("Campos dentro dos limites", func(t *testing.T) {
		monthIndex := make(map[string]int, len(Months))
		for i, month := range Months {
			monthIndex[month] = i
		}

		for _, record := range records {
			assert.NotEmpty(t, record.ID)
			assert.GreaterOrEqual(t, record.Year, FirstYear)
			assert.LessOrEqual(t, record.Year, LastYear)
			assert.Equal(t, QuarterOf(monthIndex[record.Month]), record.Quarter)
			assert.Contains(t, Brands, record.Brand)
			assert.True(t, record.Category.IsValid())
			assert.Regexp(t, "^"+regexp.QuoteMeta(record.Brand)+" ", record.Model)
			assert.GreaterOrEqual(t, record.UnitsSold, 1)
			assert.LessOrEqual(t, record.UnitsSold, 50)

			unitPrice := record.Revenue / float64(record.UnitsSold)
			assert.GreaterOrEqual(t, unitPrice, 20000.0)
			assert.LessOrEqual(t, unitPrice, 80000.0)
		}
	})
}

func TestVehicles(t *testing.T) {
	now := time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)
	vehicles := Vehicles(42, DefaultVehicleCount, now)

	require.Len(t, vehicles, DefaultVehicleCount)
	assert.Equal(t, vehicles, Vehicles(42, DefaultVehicleCount, now))

	assert.True(t, sort.SliceIsSorted(vehicles, func(i, j int) bool {
		return vehicles[i].Brand < vehicles[j].Brand
	}), "estoque deve vir ordenado por marca")

	registration := regexp.MustCompile(`^[A-Z]{3}-[0-9]{4}$`)
	ids := make(map[string]struct{}, len(vehicles))

	for _, vehicle := range vehicles {
		ids[vehicle.ID] = struct{}{}

		assert.Regexp(t, registration, vehicle.Registration)
		assert.Contains(t, Brands, vehicle.Brand)
		assert.Contains(t, Colors, vehicle.Color)
		assert.True(t, vehicle.Category.IsValid())
		assert.True(t, vehicle.Status.IsValid())
		assert.GreaterOrEqual(t, vehicle.Value, 15000.0)
		assert.LessOrEqual(t, vehicle.Value, 85000.0)
		assert.GreaterOrEqual(t, vehicle.Year, 2018)
		assert.LessOrEqual(t, vehicle.Year, 2024)
		assert.GreaterOrEqual(t, vehicle.Mileage, 0)
		assert.LessOrEqual(t, vehicle.Mileage, 150000)

		assert.False(t, vehicle.CreatedAt.Before(inventoryStart))
		assert.False(t, vehicle.CreatedAt.After(now))
		assert.False(t, vehicle.UpdatedAt.Before(vehicle.CreatedAt))
		assert.False(t, vehicle.UpdatedAt.After(now))
	}

	assert.Len(t, ids, len(vehicles), "ids devem ser únicos")
}

func TestVehicles_EmptyCount(t *testing.T) {
	assert.Equal(t, []domain.Vehicle{}, Vehicles(42, 0, time.Now()))
}
