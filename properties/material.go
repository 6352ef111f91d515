package properties

import "github.com/perrongu/thermaflow/therr"

// MaterialCategory classifies a material for downstream reporting; the
// solver itself only consumes the numeric fields.
type MaterialCategory string

const (
	MaterialMetal      MaterialCategory = "metal"
	MaterialInsulation MaterialCategory = "insulation"
	MaterialPlastic    MaterialCategory = "plastic"
)

// MaterialProperties describes one entry of the material registry: name,
// category, thermal conductivity [W/(m*K)], density [kg/m3], specific
// heat [J/(kg*K)] and radiative emissivity [0,1].
type MaterialProperties struct {
	ID          string
	Name        string
	Category    MaterialCategory
	K           float64
	Rho         float64
	Cp          float64
	Emissivity  float64
}

func (m MaterialProperties) String() string {
	return m.Name
}

// materialRegistry is the process-wide, immutable material table. It is
// never mutated after package initialization; GetMaterial returns a
// defensive copy (MaterialProperties is a value type, so the map lookup
// already yields one, but we keep the name to document the contract).
var materialRegistry = map[string]MaterialProperties{
	"steel":                     {ID: "steel", Name: "Carbon steel", Category: MaterialMetal, K: 50.0, Rho: 7850, Cp: 490, Emissivity: 0.80},
	"steel_polished":            {ID: "steel_polished", Name: "Carbon steel (polished)", Category: MaterialMetal, K: 50.0, Rho: 7850, Cp: 490, Emissivity: 0.10},
	"stainless_steel":           {ID: "stainless_steel", Name: "Stainless steel", Category: MaterialMetal, K: 16.0, Rho: 8000, Cp: 500, Emissivity: 0.85},
	"stainless_steel_polished":  {ID: "stainless_steel_polished", Name: "Stainless steel (polished)", Category: MaterialMetal, K: 16.0, Rho: 8000, Cp: 500, Emissivity: 0.17},
	"copper":                    {ID: "copper", Name: "Copper", Category: MaterialMetal, K: 401.0, Rho: 8960, Cp: 385, Emissivity: 0.78},
	"copper_polished":           {ID: "copper_polished", Name: "Copper (polished)", Category: MaterialMetal, K: 401.0, Rho: 8960, Cp: 385, Emissivity: 0.05},
	"cast_iron":                 {ID: "cast_iron", Name: "Cast iron", Category: MaterialMetal, K: 55.0, Rho: 7200, Cp: 460, Emissivity: 0.81},
	"aluminum":                  {ID: "aluminum", Name: "Aluminum", Category: MaterialMetal, K: 205.0, Rho: 2700, Cp: 900, Emissivity: 0.20},
	"fiberglass":                {ID: "fiberglass", Name: "Fiberglass insulation", Category: MaterialInsulation, K: 0.040, Rho: 100, Cp: 800, Emissivity: 0.75},
	"mineral_wool":              {ID: "mineral_wool", Name: "Mineral wool", Category: MaterialInsulation, K: 0.045, Rho: 130, Cp: 840, Emissivity: 0.75},
	"polyurethane_foam":         {ID: "polyurethane_foam", Name: "Polyurethane foam", Category: MaterialInsulation, K: 0.025, Rho: 35, Cp: 1500, Emissivity: 0.60},
	"polystyrene_expanded":      {ID: "polystyrene_expanded", Name: "Expanded polystyrene (EPS)", Category: MaterialInsulation, K: 0.036, Rho: 20, Cp: 1300, Emissivity: 0.60},
	"polystyrene_extruded":      {ID: "polystyrene_extruded", Name: "Extruded polystyrene (XPS)", Category: MaterialInsulation, K: 0.029, Rho: 35, Cp: 1300, Emissivity: 0.60},
	"elastomeric_foam":          {ID: "elastomeric_foam", Name: "Elastomeric foam", Category: MaterialInsulation, K: 0.036, Rho: 60, Cp: 1400, Emissivity: 0.60},
	"pvc":                       {ID: "pvc", Name: "PVC", Category: MaterialPlastic, K: 0.19, Rho: 1380, Cp: 900, Emissivity: 0.91},
	"hdpe":                      {ID: "hdpe", Name: "HDPE", Category: MaterialPlastic, K: 0.48, Rho: 950, Cp: 1900, Emissivity: 0.92},
	"pex":                       {ID: "pex", Name: "PEX", Category: MaterialPlastic, K: 0.41, Rho: 940, Cp: 2300, Emissivity: 0.92},
}

// GetMaterial looks up a material by id, returning ErrUnknownMaterial if
// absent from the registry.
func GetMaterial(id string) (MaterialProperties, error) {
	m, ok := materialRegistry[id]
	if !ok {
		return MaterialProperties{}, therr.UnknownMaterial(id)
	}
	return m, nil
}
