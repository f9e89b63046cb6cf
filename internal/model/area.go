package model

// Area is one of the three fixed organizational categories tagging
// documents and records.
type Area = string

const (
	AreaCalidad       Area = "Calidad"
	AreaMedioAmbiente Area = "Medio Ambiente"
	AreaSeguridad     Area = "Seguridad"

	// AreaUnknown is the default substituted when a stored row carries no area.
	AreaUnknown Area = "Sin Área"
)

// Areas lists the selectable areas in menu order.
func Areas() []Area {
	return []Area{AreaCalidad, AreaMedioAmbiente, AreaSeguridad}
}

// ValidArea reports whether a belongs to the fixed area set.
func ValidArea(a Area) bool {
	switch a {
	case AreaCalidad, AreaMedioAmbiente, AreaSeguridad:
		return true
	}
	return false
}

// DocumentTypes lists the selectable document types in menu order.
func DocumentTypes() []string {
	return []string{"PDF", "Word", "Excel", "TXT"}
}

// ValidDocumentType reports whether t belongs to the fixed type set.
func ValidDocumentType(t string) bool {
	switch t {
	case "PDF", "Word", "Excel", "TXT":
		return true
	}
	return false
}
