package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// PercentChange retorna a variação percentual de previous para current com duas casas.
// Sem base de comparação (previous == 0) não há crescimento.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

// Share retorna part / total em percentual com duas casas, 0 quando total é 0
func Share(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(part / total * 100)
}
