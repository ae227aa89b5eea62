package utils

import "math"

// RoundWithTwoDecimalPlace arredonda valores monetários e razões (ctr, cpc)
// para duas casas decimais antes de irem para a resposta.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
