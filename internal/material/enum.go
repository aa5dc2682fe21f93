package material

type TipoMaterial string

const (
	TipoPlanoAula TipoMaterial = "PLANO_AULA"
	TipoSlides    TipoMaterial = "SLIDES"
	TipoRubrica   TipoMaterial = "RUBRICA"
)

func (t TipoMaterial) Valido() bool {
	switch t {
	case TipoPlanoAula, TipoSlides, TipoRubrica:
		return true
	}
	return false
}
