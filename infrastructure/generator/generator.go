// Package generator produz os dados sintéticos usados quando DATA_SOURCE=memory.
// Para uma mesma seed o resultado é sempre o mesmo.
package generator

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
	"github.com/vfg2006/vehicle-sales-api/pkg/utils"
)

const (
	FirstYear = 2022
	LastYear  = 2024

	DefaultVehicleCount = 150
)

var (
	Brands = []string{"Toyota", "Honda", "Ford", "Chevrolet", "BMW", "Mercedes", "Audi", "Nissan", "Hyundai", "Volkswagen"}
	Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	Colors = []string{"Black", "White", "Silver", "Blue", "Red", "Gray", "Green", "Brown"}

	inventoryStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// QuarterOf converte o índice do mês (0-11) no trimestre (1-4)
func QuarterOf(monthIndex int) int {
	return monthIndex/3 + 1
}

// Sales gera entre 20 e 40 registros por mês para cada mês de FirstYear a LastYear
func Sales(seed uint64) []domain.SalesRecord {
	faker := gofakeit.New(seed)
	records := make([]domain.SalesRecord, 0, (LastYear-FirstYear+1)*len(Months)*30)

	for year := FirstYear; year <= LastYear; year++ {
		for monthIndex, month := range Months {
			count := faker.IntRange(20, 40)

			for i := 0; i < count; i++ {
				brand := faker.RandomString(Brands)
				category := domain.Categories[faker.IntRange(0, len(domain.Categories)-1)]
				unitsSold := faker.IntRange(1, 50)
				basePrice := faker.IntRange(20000, 80000)

				records = append(records, domain.SalesRecord{
					ID:        faker.UUID(),
					Year:      year,
					Quarter:   QuarterOf(monthIndex),
					Month:     month,
					Brand:     brand,
					Model:     fmt.Sprintf("%s %s", brand, faker.CarModel()),
					UnitsSold: unitsSold,
					Revenue:   utils.RoundWithTwoDecimalPlace(float64(unitsSold * basePrice)),
					Category:  category,
				})
			}
		}
	}

	return records
}

// Vehicles gera o estoque inicial ordenado por marca.
// As datas ficam entre 01/01/2020 e now.
func Vehicles(seed uint64, count int, now time.Time) []domain.Vehicle {
	if count <= 0 {
		return []domain.Vehicle{}
	}

	faker := gofakeit.New(seed)
	vehicles := make([]domain.Vehicle, 0, count)

	for i := 0; i < count; i++ {
		brand := faker.RandomString(Brands)
		category := domain.Categories[faker.IntRange(0, len(domain.Categories)-1)]
		createdAt := faker.DateRange(inventoryStart, now).UTC()

		vehicles = append(vehicles, domain.Vehicle{
			ID:           faker.UUID(),
			Registration: registration(faker),
			Brand:        brand,
			Model:        fmt.Sprintf("%s %s", brand, faker.CarModel()),
			Value:        float64(faker.IntRange(15000, 85000)),
			Year:         faker.IntRange(2018, 2024),
			Category:     category,
			Color:        faker.RandomString(Colors),
			Mileage:      faker.IntRange(0, 150000),
			Status:       domain.VehicleStatuses[faker.IntRange(0, len(domain.VehicleStatuses)-1)],
			CreatedAt:    createdAt,
			UpdatedAt:    faker.DateRange(createdAt, now).UTC(),
		})
	}

	sort.SliceStable(vehicles, func(i, j int) bool {
		return vehicles[i].Brand < vehicles[j].Brand
	})

	return vehicles
}

func registration(faker *gofakeit.Faker) string {
	return strings.ToUpper(faker.LetterN(3)) + "-" + faker.DigitN(4)
}
