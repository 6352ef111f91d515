// Package segment implements the coupled hydraulic/thermal solver for
// one pipe segment: it iterates over the segment's mean fluid
// temperature, pulling properties from properties, flow
// classification and friction from hydraulics, and convection/
// resistance/outlet modeling from heattransfer.
package segment

import (
	"math"

	"github.com/perrongu/thermaflow/heattransfer"
	"github.com/perrongu/thermaflow/hydraulics"
	"github.com/perrongu/thermaflow/internal/numeric"
	"github.com/perrongu/thermaflow/observe"
	"github.com/perrongu/thermaflow/properties"
	"github.com/perrongu/thermaflow/therr"
)

// GeometrySpec describes the pipe cross-section and run length for one
// segment.
type GeometrySpec struct {
	InnerDiameterM float64
	OuterDiameterM float64
	RoughnessM     float64
	LengthM        float64
	MaterialID     string
}

// FluidInlet is the segment's inlet fluid state.
type FluidInlet struct {
	TempC       float64
	PressureBar float64
	MassFlowKgS float64
}

// Ambient is the surrounding air state.
type Ambient struct {
	TempC       float64
	WindSpeedMs float64
}

// InsulationLayer is an optional jacket around the pipe.
type InsulationLayer struct {
	MaterialID  string
	ThicknessM  float64
}

// DefaultIterations is the fixed-point iteration count used when the
// caller does not request a specific one. Two iterations are
// contractually sufficient for the documented convergence tolerance.
const DefaultIterations = 2

// Options tunes solver behavior.
type Options struct {
	// Iterations bounds the T_mean fixed-point loop; values above 10
	// are clamped to 10. Zero or a negative value selects
	// DefaultIterations.
	Iterations int
	// FrictionMethod selects the turbulent friction-factor correlation.
	FrictionMethod hydraulics.Method
	// Sink receives non-fatal warnings (transition-zone physics,
	// correlation validity-range notices, Colebrook fallback). Nil
	// discards them.
	Sink observe.Sink
}

// Result is the outcome of solving one segment.
type Result struct {
	TOutC      float64
	DeltaPPa   float64
	QLossW     float64
	HIntWm2K   float64
	HExtWm2K   float64
	UWm2K      float64
	NTU        float64
	Re         float64
	F          float64
	VelocityMs float64
	Regime     hydraulics.Regime
	RTotalKW   float64
}

func clampIterations(n int) int {
	if n <= 0 {
		return DefaultIterations
	}
	if n > 10 {
		return 10
	}
	return n
}

// Solve runs the per-segment coupled solver: it iterates over the mean
// fluid temperature T_avg, recomputing flow regime,
// friction, internal and external convection and the NTU outlet model
// each pass, and returns the last iteration's result.
func Solve(geom GeometrySpec, fluid FluidInlet, ambient Ambient, insulation *InsulationLayer, opts Options) (Result, error) {
	if err := validate(geom, fluid, ambient, insulation); err != nil {
		return Result{}, err
	}

	sink := opts.Sink
	if sink == nil {
		sink = observe.Discard
	}
	iterations := clampIterations(opts.Iterations)

	pipeMaterial, err := properties.GetMaterial(geom.MaterialID)
	if err != nil {
		return Result{}, err
	}

	var insulationMaterial properties.MaterialProperties
	if insulation != nil {
		insulationMaterial, err = properties.GetMaterial(insulation.MaterialID)
		if err != nil {
			return Result{}, err
		}
	}

	outerDiameterFinal := geom.OuterDiameterM
	if insulation != nil {
		outerDiameterFinal = geom.OuterDiameterM + 2*insulation.ThicknessM
	}

	tOutGuess := fluid.TempC
	if iterations >= 2 {
		tOutGuess = numeric.ClampMin0((fluid.TempC + ambient.TempC) / 2)
	}

	var result Result
	for i := 0; i < iterations; i++ {
		tAvg := fluid.TempC
		if iterations != 1 {
			tAvg = (fluid.TempC + tOutGuess) / 2
		}
		tAvg = numeric.ClampMin0(tAvg)

		water, err := properties.GetWaterProperties(tAvg, fluid.PressureBar)
		if err != nil {
			return Result{}, err
		}
		air, err := properties.GetAirProperties(ambient.TempC)
		if err != nil {
			return Result{}, err
		}

		v, err := hydraulics.VelocityFromMassFlow(fluid.MassFlowKgS, water.Rho, geom.InnerDiameterM)
		if err != nil {
			return Result{}, err
		}
		re, err := hydraulics.Reynolds(water.Rho, v, geom.InnerDiameterM, water.Mu)
		if err != nil {
			return Result{}, err
		}
		regime := hydraulics.ClassifyRegime(re)
		relRough := geom.RoughnessM / geom.InnerDiameterM
		f, err := hydraulics.FrictionFactor(re, relRough, opts.FrictionMethod, sink)
		if err != nil {
			return Result{}, err
		}
		deltaP, err := hydraulics.PressureDropDarcy(f, geom.LengthM, geom.InnerDiameterM, water.Rho, v)
		if err != nil {
			return Result{}, err
		}

		prWater := water.Mu * water.Cp / water.K
		nuInt, err := heattransfer.InternalNusseltAuto(re, prWater, geom.InnerDiameterM, geom.LengthM, &f, true, sink)
		if err != nil {
			return Result{}, err
		}
		hInt := nuInt * water.K / geom.InnerDiameterM

		tSurfEstimateC := (fluid.TempC + ambient.TempC) / 2
		hConvExt, err := heattransfer.ExternalConvection(ambient.WindSpeedMs, outerDiameterFinal, tSurfEstimateC, ambient.TempC, air.Rho, air.Mu, air.K, air.Cp, air.Pr)
		if err != nil {
			return Result{}, err
		}
		hRad, err := heattransfer.LinearizedRadiationH(pipeMaterial.Emissivity, tSurfEstimateC, ambient.TempC)
		if err != nil {
			return Result{}, err
		}
		hExt := hConvExt + hRad

		rExtConv, err := heattransfer.ConvectiveResistance(hConvExt, outerDiameterFinal, geom.LengthM)
		if err != nil {
			return Result{}, err
		}
		rExtRad, err := heattransfer.ConvectiveResistance(hRad, outerDiameterFinal, geom.LengthM)
		if err != nil {
			return Result{}, err
		}
		rExt, err := heattransfer.ParallelResistance(rExtConv, rExtRad)
		if err != nil {
			return Result{}, err
		}

		rInt, err := heattransfer.ConvectiveResistance(hInt, geom.InnerDiameterM, geom.LengthM)
		if err != nil {
			return Result{}, err
		}
		rWall, err := heattransfer.CylindricalConductiveResistance(pipeMaterial.K, geom.InnerDiameterM, geom.OuterDiameterM, geom.LengthM)
		if err != nil {
			return Result{}, err
		}
		resistances := []float64{rInt, rWall}
		if insulation != nil {
			rInsul, err := heattransfer.CylindricalConductiveResistance(insulationMaterial.K, geom.OuterDiameterM, outerDiameterFinal, geom.LengthM)
			if err != nil {
				return Result{}, err
			}
			resistances = append(resistances, rInsul)
		}
		resistances = append(resistances, rExt)

		rTotal, err := heattransfer.SeriesResistance(resistances...)
		if err != nil {
			return Result{}, err
		}
		ua, err := heattransfer.OverallUA(rTotal)
		if err != nil {
			return Result{}, err
		}

		ntuResult, err := heattransfer.NTUOutlet(ua, fluid.MassFlowKgS, water.Cp, fluid.TempC, ambient.TempC)
		if err != nil {
			return Result{}, err
		}

		u := ua / (math.Pi * outerDiameterFinal * geom.LengthM)

		result = Result{
			TOutC:      ntuResult.TOutC,
			DeltaPPa:   deltaP,
			QLossW:     ntuResult.QLossW,
			HIntWm2K:   hInt,
			HExtWm2K:   hExt,
			UWm2K:      u,
			NTU:        ntuResult.NTU,
			Re:         re,
			F:          f,
			VelocityMs: v,
			Regime:     regime,
			RTotalKW:   rTotal,
		}

		tOutGuess = numeric.ClampMin0(result.TOutC)
	}

	return result, nil
}

func validate(geom GeometrySpec, fluid FluidInlet, ambient Ambient, insulation *InsulationLayer) error {
	if !numeric.Finite(geom.InnerDiameterM, geom.OuterDiameterM, geom.RoughnessM, geom.LengthM) {
		return therr.InvalidInputf("segment: geometry values must be finite")
	}
	if geom.InnerDiameterM <= 0 || geom.OuterDiameterM <= 0 || geom.LengthM <= 0 {
		return therr.InvalidInputf("segment: inner/outer diameter and length must be positive (Di=%v Do=%v L=%v)", geom.InnerDiameterM, geom.OuterDiameterM, geom.LengthM)
	}
	if geom.OuterDiameterM <= geom.InnerDiameterM {
		return therr.InvalidInputf("segment: outer diameter must exceed inner diameter (Di=%v Do=%v)", geom.InnerDiameterM, geom.OuterDiameterM)
	}
	if geom.RoughnessM < 0 {
		return therr.InvalidInputf("segment: roughness must be non-negative (eps=%v)", geom.RoughnessM)
	}
	if geom.MaterialID == "" {
		return therr.InvalidInputf("segment: material id must be set")
	}

	if !numeric.Finite(fluid.TempC, fluid.PressureBar, fluid.MassFlowKgS) {
		return therr.InvalidInputf("segment: fluid inlet values must be finite")
	}
	if fluid.PressureBar <= 0 || fluid.MassFlowKgS <= 0 {
		return therr.InvalidInputf("segment: inlet pressure and mass flow must be positive (P=%v mdot=%v)", fluid.PressureBar, fluid.MassFlowKgS)
	}

	if !numeric.Finite(ambient.TempC, ambient.WindSpeedMs) {
		return therr.InvalidInputf("segment: ambient values must be finite")
	}
	if ambient.TempC < -40 || ambient.TempC > 50 {
		return therr.OutOfRangef("segment: ambient temperature %v outside [-40,50]", ambient.TempC)
	}
	if ambient.WindSpeedMs < 0 {
		return therr.InvalidInputf("segment: wind speed must be non-negative (v=%v)", ambient.WindSpeedMs)
	}

	if insulation != nil {
		if !numeric.Finite(insulation.ThicknessM) {
			return therr.InvalidInputf("segment: insulation thickness must be finite")
		}
		if insulation.ThicknessM <= 0 {
			return therr.InvalidInputf("segment: insulation thickness must be positive (t=%v)", insulation.ThicknessM)
		}
		if insulation.MaterialID == "" {
			return therr.InvalidInputf("segment: insulation material id must be set")
		}
	}

	return nil
}
