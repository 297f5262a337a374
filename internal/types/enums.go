package types

// TruckModel is the closed set of truck models the registry accepts.
// The zero value is not a valid persisted state.
type TruckModel int16

const (
	TruckModelFH TruckModel = 1
	TruckModelFM TruckModel = 2
	TruckModelVM TruckModel = 3
)

func (m TruckModel) Name() string {
	switch m {
	case TruckModelFH:
		return "FH"
	case TruckModelFM:
		return "FM"
	case TruckModelVM:
		return "VM"
	}
	return ""
}

func (m TruckModel) Description() string {
	switch m {
	case TruckModelFH:
		return "Caminhão FH"
	case TruckModelFM:
		return "Caminhão FM"
	case TruckModelVM:
		return "Caminhão VM"
	}
	return ""
}

func (m TruckModel) Valid() bool {
	switch m {
	case TruckModelFH, TruckModelFM, TruckModelVM:
		return true
	}
	return false
}

func TruckModels() []TruckModel {
	return []TruckModel{TruckModelFH, TruckModelFM, TruckModelVM}
}

// PlantLocation is the closed set of manufacturing plants.
type PlantLocation int16

const (
	PlantLocationBR PlantLocation = 1
	PlantLocationSE PlantLocation = 2
	PlantLocationUS PlantLocation = 3
	PlantLocationFR PlantLocation = 4
)

func (p PlantLocation) Name() string {
	switch p {
	case PlantLocationBR:
		return "BR"
	case PlantLocationSE:
		return "SE"
	case PlantLocationUS:
		return "US"
	case PlantLocationFR:
		return "FR"
	}
	return ""
}

func (p PlantLocation) Description() string {
	switch p {
	case PlantLocationBR:
		return "Brasil"
	case PlantLocationSE:
		return "Suécia"
	case PlantLocationUS:
		return "Estados Unidos"
	case PlantLocationFR:
		return "França"
	}
	return ""
}

func (p PlantLocation) Valid() bool {
	switch p {
	case PlantLocationBR, PlantLocationSE, PlantLocationUS, PlantLocationFR:
		return true
	}
	return false
}

func PlantLocations() []PlantLocation {
	return []PlantLocation{PlantLocationBR, PlantLocationSE, PlantLocationUS, PlantLocationFR}
}

// Definition is the value/name/description triple the form UI consumes.
type Definition struct {
	Value       int    `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func TruckModelDefinitions() []Definition {
	models := TruckModels()
	out := make([]Definition, 0, len(models))
	for _, m := range models {
		out = append(out, Definition{Value: int(m), Name: m.Name(), Description: m.Description()})
	}
	return out
}

func PlantLocationDefinitions() []Definition {
	plants := PlantLocations()
	out := make([]Definition, 0, len(plants))
	for _, p := range plants {
		out = append(out, Definition{Value: int(p), Name: p.Name(), Description: p.Description()})
	}
	return out
}
