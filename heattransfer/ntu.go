package heattransfer

import (
	"math"

	"github.com/perrongu/thermaflow/internal/numeric"
	"github.com/perrongu/thermaflow/therr"
)

// SegmentThermalResult is the outcome of applying the NTU-effectiveness
// model to a single pipe segment.
type SegmentThermalResult struct {
	NTU     float64
	Epsilon float64
	TOutC   float64
	QLossW  float64
}

// NTUOutlet applies the constant-ambient-temperature NTU-effectiveness
// model to a segment: NTU = UA/(mdot*cp), epsilon = 1-exp(-NTU),
// T_out = T_amb + (T_in-T_amb)*exp(-NTU), Q_loss = mdot*cp*(T_in-T_out).
// This is exact for a single stream exchanging with an infinite (fixed
// temperature) reservoir, which is how the ambient air is modeled.
func NTUOutlet(ua, mdot, cp, tInC, tAmbC float64) (SegmentThermalResult, error) {
	if !numeric.Finite(ua, mdot, cp, tInC, tAmbC) {
		return SegmentThermalResult{}, therr.InvalidInputf("ntu: inputs must be finite (ua=%v mdot=%v cp=%v tIn=%v tAmb=%v)", ua, mdot, cp, tInC, tAmbC)
	}
	if ua <= 0 || mdot <= 0 || cp <= 0 {
		return SegmentThermalResult{}, therr.InvalidInputf("ntu: ua, mdot and cp must be positive (ua=%v mdot=%v cp=%v)", ua, mdot, cp)
	}

	ntu := ua / (mdot * cp)
	epsilon := 1 - math.Exp(-ntu)
	tOut := tAmbC + (tInC-tAmbC)*math.Exp(-ntu)
	qLoss := mdot * cp * (tInC - tOut)

	return SegmentThermalResult{
		NTU:     ntu,
		Epsilon: epsilon,
		TOutC:   tOut,
		QLossW:  qLoss,
	}, nil
}
