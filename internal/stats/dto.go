package stats

// ConteoMes es la cantidad de exámenes cuya fecha de fin cae en un mes.
// Clave ordenable (2006-01) junto a la etiqueta legible (January 2006).
type ConteoMes struct {
	Clave    string `json:"clave"`
	Mes      string `json:"mes"`
	Examenes int    `json:"examenes"`
}

type EstadisticasResponse struct {
	PorMes []ConteoMes `json:"porMes"`
	Total  int         `json:"total"`
}
