package domain

import "github.com/dustin/go-humanize"

const pricePattern = "#,###.##"

type Prediction struct {
	Price     float64 `json:"price"`
	Formatted string  `json:"formatted"`
	Message   string  `json:"message"`
}

// NewPrediction formats a raw price for display.
func NewPrediction(price float64) Prediction {
	formatted := FormatPrice(price)
	return Prediction{
		Price:     price,
		Formatted: formatted,
		Message:   "Predicted Diamond Price: " + formatted,
	}
}

// FormatPrice renders a price as dollars with a thousands separator and two decimals.
// The sign follows the dollar sign: -42.1 becomes "$-42.10".
func FormatPrice(price float64) string {
	if price < 0 {
		return "$-" + humanize.FormatFloat(pricePattern, -price)
	}
	return "$" + humanize.FormatFloat(pricePattern, price)
}
