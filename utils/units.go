package utils

// Conversion factors between display units and the canonical storage units
// (kilograms, centimeters).
const (
    kgPerLb = 0.453592
    cmPerIn = 2.54
    inPerFt = 12
)

func LbToKg(lb float64) float64 { return lb * kgPerLb }

func KgToLb(kg float64) float64 { return kg / kgPerLb }

func InchesToCm(in float64) float64 { return in * cmPerIn }

func FeetInchesToCm(feet, inches float64) float64 {
    return InchesToCm(feet*inPerFt + inches)
}

func CmToInches(cm float64) float64 { return cm / cmPerIn }
