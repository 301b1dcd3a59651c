package catalog

import "github.com/osse101/CyberClicker_Go/internal/domain"

var wheelPrizes = []domain.WheelPrize{
	{ID: "money-1", Type: domain.PrizeMoney, Value: 1000, Label: "¥1K"},
	{ID: "multiplier-1", Type: domain.PrizeMultiplier, Value: 2, Label: "2x"},
	{ID: "money-2", Type: domain.PrizeMoney, Value: 5000, Label: "¥5K"},
	{ID: "boost-1", Type: domain.PrizeBoost, Value: 1.5, Label: "BOOST"},
	{ID: "money-3", Type: domain.PrizeMoney, Value: 10000, Label: "¥10K"},
	{ID: "multiplier-2", Type: domain.PrizeMultiplier, Value: 3, Label: "3x"},
	{ID: "money-4", Type: domain.PrizeMoney, Value: 25000, Label: "¥25K"},
	{ID: "special-1", Type: domain.PrizeSpecial, Value: 5, Label: "LUCKY"},
}

// WheelPrizes returns the wheel segments in order
func WheelPrizes() []domain.WheelPrize {
	return append([]domain.WheelPrize(nil), wheelPrizes...)
}
