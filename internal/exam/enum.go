package exam

type TipoPregunta string

const (
	SELECCION_UNICA TipoPregunta = "SELECCION_UNICA"
	TEXTO_ABIERTO   TipoPregunta = "TEXTO_ABIERTO"
)

var AllTipos = []TipoPregunta{
	SELECCION_UNICA,
	TEXTO_ABIERTO,
}

func (t TipoPregunta) IsValid() bool {
	for _, v := range AllTipos {
		if t == v {
			return true
		}
	}
	return false
}
