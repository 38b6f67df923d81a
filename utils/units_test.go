package utils

import (
    "math"
    "testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLbToKg(t *testing.T) {
    if got := LbToKg(1); !almostEqual(got, 0.453592) {
        t.Errorf("LbToKg(1) = %v", got)
    }
    if got := LbToKg(180); !almostEqual(got, 81.64656) {
        t.Errorf("LbToKg(180) = %v", got)
    }
}

func TestWeightRoundTrip(t *testing.T) {
    if got := KgToLb(LbToKg(154)); !almostEqual(got, 154) {
        t.Errorf("round trip = %v, want 154", got)
    }
}

func TestHeightConversions(t *testing.T) {
    if got := InchesToCm(1); !almostEqual(got, 2.54) {
        t.Errorf("InchesToCm(1) = %v", got)
    }
    if got := FeetInchesToCm(5, 9); !almostEqual(got, 175.26) {
        t.Errorf("FeetInchesToCm(5,9) = %v, want 175.26", got)
    }
    if got := CmToInches(InchesToCm(69)); !almostEqual(got, 69) {
        t.Errorf("inches round trip = %v", got)
    }
}

func TestIsKetoFriendlyBounds(t *testing.T) {
    cases := []struct {
        carbs float64
        want  bool
    }{
        {0, true},
        {3.5, true},
        {7, true},
        {7.1, false},
        {45, false},
        {-1, false},
    }
    for _, c := range cases {
        if got := IsKetoFriendly(c.carbs); got != c.want {
            t.Errorf("IsKetoFriendly(%v) = %v, want %v", c.carbs, got, c.want)
        }
    }
}
