package domain

type VehicleCategory string

const (
	CategorySedan     VehicleCategory = "Sedan"
	CategorySUV       VehicleCategory = "SUV"
	CategoryTruck     VehicleCategory = "Truck"
	CategoryHatchback VehicleCategory = "Hatchback"
	CategoryElectric  VehicleCategory = "Electric"
)

// Categories lista as categorias conhecidas na ordem usada pelo gerador
var Categories = []VehicleCategory{
	CategorySedan,
	CategorySUV,
	CategoryTruck,
	CategoryHatchback,
	CategoryElectric,
}

func (c VehicleCategory) IsValid() bool {
	for _, category := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// SalesRecord representa as vendas de um modelo de uma marca em um mês.
// É gerado uma única vez na inicialização e nunca é alterado depois disso.
type SalesRecord struct {
	ID        string          `json:"id"`
	Year      int             `json:"year"`
	Quarter   int             `json:"quarter"` // 1-4
	Month     string          `json:"month"`   // Jan, Feb, ...
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	UnitsSold int             `json:"units_sold"`
	Revenue   float64         `json:"revenue"`
	Category  VehicleCategory `json:"category"`
}
