package utils

// Keto-friendly means 0–7 g of carbs per serving, inclusive.
const ketoCarbCeiling = 7.0

func IsKetoFriendly(carbs float64) bool {
    return carbs >= 0 && carbs <= ketoCarbCeiling
}
