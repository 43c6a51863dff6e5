package circuit

import "math"

// TimeConstant returns the RC time constant τ = R·C in seconds.
func TimeConstant(r, c float64) float64 {
	return r * c
}

// ChargeVoltage returns the capacitor voltage while charging toward
// supply voltage v through resistance r: Vc(t) = V(1 - e^(-t/RC)).
func ChargeVoltage(v, r, c, t float64) float64 {
	return v * (1 - math.Exp(-t/(r*c)))
}

// DischargeVoltage returns the capacitor voltage while discharging from
// initial voltage v0 through resistance r: Vc(t) = V0·e^(-t/RC).
func DischargeVoltage(v0, r, c, t float64) float64 {
	return v0 * math.Exp(-t/(r*c))
}
