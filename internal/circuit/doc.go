// Package circuit provides the stateless circuit formulas behind the
// toolbox calculators: series/parallel resistor combination, RC
// transient voltages, and the six-case Ohm's-law/power solver.
//
// All functions are pure and expect strictly positive inputs; the input
// boundary validates values before they reach this package, and the
// formulas re-check only where a bad value could divide by zero.
//
// # Resistor networks
//
//	total, err := circuit.Series([]float64{10, 20, 30})   // 60
//	total, err := circuit.Parallel([]float64{10, 20, 30}) // ≈5.4545
//
// # RC transients
//
//	tau := circuit.TimeConstant(1000, 1e-6)          // 1 ms
//	vc := circuit.ChargeVoltage(5, 1000, 1e-6, 1e-3) // ≈3.16 V
//
// # Ohm's law and power
//
// Solve takes one of the six known-quantity pairs and returns the full
// operating point:
//
//	q, err := circuit.Solve(circuit.PairVR, 12, 100)
//	// q.V=12 q.R=100 q.I=0.12 q.P=1.44
package circuit
