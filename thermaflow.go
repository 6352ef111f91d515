// Package thermaflow chains per-segment solves into a full pipe-run
// profile: temperature, pressure and heat loss at every segment
// boundary, plus the pressure-exhaustion guard and freeze-clamp
// transition between segments.
package thermaflow

import (
	"errors"
	"strings"

	"github.com/perrongu/thermaflow/freeze"
	"github.com/perrongu/thermaflow/hydraulics"
	"github.com/perrongu/thermaflow/observe"
	"github.com/perrongu/thermaflow/segment"
	"github.com/perrongu/thermaflow/therr"
)

// GeometrySpec describes the overall pipe run. It is interpreted as
// the total pipe when building a NetworkConfig; Run derives
// L_seg = L_total/N.
type GeometrySpec struct {
	InnerDiameterM float64 `json:"inner_diameter_m"`
	OuterDiameterM float64 `json:"outer_diameter_m"`
	RoughnessM     float64 `json:"roughness_m"`
	TotalLengthM   float64 `json:"total_length_m"`
	MaterialID     string  `json:"material_id"`
}

// FluidInlet is the network's inlet fluid state.
type FluidInlet struct {
	TempC       float64 `json:"temp_c"`
	PressureBar float64 `json:"pressure_bar"`
	MassFlowKgS float64 `json:"mass_flow_kg_s"`
}

// Ambient is the surrounding air state, assumed uniform along the run.
type Ambient struct {
	TempC       float64 `json:"temp_c"`
	WindSpeedMs float64 `json:"wind_speed_m_s"`
}

// InsulationLayer is an optional jacket applied uniformly along the
// run.
type InsulationLayer struct {
	MaterialID string  `json:"material_id"`
	ThicknessM float64 `json:"thickness_m"`
}

// NetworkConfig is the full input to Run.
type NetworkConfig struct {
	Geometry       GeometrySpec      `json:"geometry"`
	Segments       int               `json:"segments"`
	Fluid          FluidInlet        `json:"fluid"`
	Ambient        Ambient           `json:"ambient"`
	Insulation     *InsulationLayer  `json:"insulation,omitempty"`
	Iterations     int               `json:"iterations,omitempty"`
	FrictionMethod hydraulics.Method `json:"-"`
}

// SegmentReport is the public per-segment record carried in
// NetworkResult, a thin rename of segment.Result with the boundary
// position attached.
type SegmentReport struct {
	XStartM    float64           `json:"x_start_m"`
	XEndM      float64           `json:"x_end_m"`
	TOutC      float64           `json:"t_out_c"`
	DeltaPPa   float64           `json:"delta_p_pa"`
	QLossW     float64           `json:"q_loss_w"`
	HIntWm2K   float64           `json:"h_int_w_m2_k"`
	HExtWm2K   float64           `json:"h_ext_w_m2_k"`
	UWm2K      float64           `json:"u_w_m2_k"`
	NTU        float64           `json:"ntu"`
	Re         float64           `json:"re"`
	F          float64           `json:"f"`
	VelocityMs float64           `json:"velocity_m_s"`
	Regime     hydraulics.Regime `json:"regime"`
	RTotalKW   float64           `json:"r_total_kw"`
	Frozen     bool              `json:"frozen"`
}

// NetworkResult is Run's full output.
type NetworkResult struct {
	T                 []float64       `json:"t_c"`
	X                 []float64       `json:"x_m"`
	P                 []float64       `json:"p_bar"`
	Segments          []SegmentReport `json:"segments"`
	TFinalC           float64         `json:"t_final_c"`
	DeltaPTotalPa     float64         `json:"delta_p_total_pa"`
	QLossTotalW       float64         `json:"q_loss_total_w"`
	MinTempC          float64         `json:"min_temp_c"`
	MinTempPositionM  float64         `json:"min_temp_position_m"`
	FrozenCondition   bool            `json:"frozen_condition"`
	FrozenAtPositionM *float64        `json:"frozen_at_position_m,omitempty"`
}

// Options tunes Run's behavior beyond what NetworkConfig carries.
type Options struct {
	Sink observe.Sink
}

// waterTableRejectionMarker is the substring used to recognize an
// OutOfRange error as a water-property-table rejection, as opposed to
// an air-table or other out-of-range error.
const waterTableRejectionMarker = "water temperature"

// Run splits the configured pipe into N equal segments and solves them
// in sequence, chaining each segment's outlet state into the next
// segment's inlet. It implements the freeze clamp, the freeze-via-
// table-rejection bridge and the pressure-exhaustion guard between
// segments.
func Run(cfg NetworkConfig, opts Options) (NetworkResult, error) {
	if err := validateConfig(cfg); err != nil {
		return NetworkResult{}, err
	}
	sink := opts.Sink
	if sink == nil {
		sink = observe.Discard
	}

	lSeg := cfg.Geometry.TotalLengthM / float64(cfg.Segments)
	geom := segment.GeometrySpec{
		InnerDiameterM: cfg.Geometry.InnerDiameterM,
		OuterDiameterM: cfg.Geometry.OuterDiameterM,
		RoughnessM:     cfg.Geometry.RoughnessM,
		LengthM:        lSeg,
		MaterialID:     cfg.Geometry.MaterialID,
	}
	var insulation *segment.InsulationLayer
	if cfg.Insulation != nil {
		insulation = &segment.InsulationLayer{
			MaterialID: cfg.Insulation.MaterialID,
			ThicknessM: cfg.Insulation.ThicknessM,
		}
	}
	segOpts := segment.Options{
		Iterations:     cfg.Iterations,
		FrictionMethod: cfg.FrictionMethod,
		Sink:           sink,
	}

	ambient := segment.Ambient{TempC: cfg.Ambient.TempC, WindSpeedMs: cfg.Ambient.WindSpeedMs}

	result := NetworkResult{
		T: make([]float64, 0, cfg.Segments+1),
		X: make([]float64, 0, cfg.Segments+1),
		P: make([]float64, 0, cfg.Segments+1),
	}
	result.T = append(result.T, cfg.Fluid.TempC)
	result.X = append(result.X, 0)
	result.P = append(result.P, cfg.Fluid.PressureBar)

	result.MinTempC = cfg.Fluid.TempC
	result.MinTempPositionM = 0

	currentT := cfg.Fluid.TempC
	currentP := cfg.Fluid.PressureBar

	for i := 0; i < cfg.Segments; i++ {
		xStart := float64(i) * lSeg
		xEnd := float64(i+1) * lSeg

		fluid := segment.FluidInlet{TempC: currentT, PressureBar: currentP, MassFlowKgS: cfg.Fluid.MassFlowKgS}

		res, err := segment.Solve(geom, fluid, ambient, insulation, segOpts)
		frozenSegment := false
		if err != nil {
			if errors.Is(err, therr.ErrOutOfRange) && currentT <= 0 && strings.Contains(err.Error(), waterTableRejectionMarker) {
				res = segment.Result{TOutC: 0, DeltaPPa: 0, QLossW: 0, Re: 0, Regime: hydraulics.Frozen}
				frozenSegment = true
			} else {
				return NetworkResult{}, err
			}
		}

		if res.TOutC <= 0 {
			res.TOutC = 0
			res.Regime = hydraulics.Frozen
			frozenSegment = true
		}

		if frozenSegment && !result.FrozenCondition {
			result.FrozenCondition = true
			pos := xEnd
			result.FrozenAtPositionM = &pos
		}

		nextP := currentP - res.DeltaPPa/1e5
		if nextP <= 0 {
			return NetworkResult{}, &therr.PressureExhaustedError{
				SegmentIndex:  i,
				InitialBar:    cfg.Fluid.PressureBar,
				CumulativeBar: cfg.Fluid.PressureBar - nextP,
			}
		}

		result.T = append(result.T, res.TOutC)
		result.X = append(result.X, xEnd)
		result.P = append(result.P, nextP)

		result.Segments = append(result.Segments, SegmentReport{
			XStartM:    xStart,
			XEndM:      xEnd,
			TOutC:      res.TOutC,
			DeltaPPa:   res.DeltaPPa,
			QLossW:     res.QLossW,
			HIntWm2K:   res.HIntWm2K,
			HExtWm2K:   res.HExtWm2K,
			UWm2K:      res.UWm2K,
			NTU:        res.NTU,
			Re:         res.Re,
			F:          res.F,
			VelocityMs: res.VelocityMs,
			Regime:     res.Regime,
			RTotalKW:   res.RTotalKW,
			Frozen:     frozenSegment,
		})

		result.DeltaPTotalPa += res.DeltaPPa
		result.QLossTotalW += res.QLossW

		if res.TOutC < result.MinTempC {
			result.MinTempC = res.TOutC
			result.MinTempPositionM = xEnd
		}

		currentT = res.TOutC
		currentP = nextP
	}

	result.TFinalC = currentT
	return result, nil
}

// AnalyzeFreeze runs the freeze analyzer over a completed network
// result's temperature profile.
func AnalyzeFreeze(result NetworkResult, freezeTempC float64) (freeze.Analysis, error) {
	return freeze.Analyze(result.T, result.X, freezeTempC)
}

func validateConfig(cfg NetworkConfig) error {
	if cfg.Segments < 1 {
		return therr.InvalidInputf("network: segments must be >= 1 (got %d)", cfg.Segments)
	}
	if cfg.Geometry.TotalLengthM <= 0 {
		return therr.InvalidInputf("network: total length must be positive (got %v)", cfg.Geometry.TotalLengthM)
	}
	return nil
}
