package ia

import "os"

// Modelos conhecidos, tentados em ordem quando o configurado falha.
var modelosFallback = []string{
	"gemini-2.0-flash",
	"gemini-2.0-flash-lite",
	"gemini-1.5-flash",
}

type Config struct {
	APIKey          string
	Modelo          string
	Temperature     float32
	MaxOutputTokens int32
}

func DefaultConfig() Config {
	return Config{
		Temperature:     0.7,
		MaxOutputTokens: 8192,
	}
}

// ConfigFromEnv é lido uma única vez na montagem do container; o núcleo
// de geração nunca consulta variáveis de ambiente diretamente.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.Modelo = os.Getenv("AVALIAPRO_MODELO_IA")
	return cfg
}

// Candidatos monta a lista de modelos a tentar: o modelo configurado (se
// houver) na frente dos fallbacks, sem duplicatas e preservando a ordem.
func (c Config) Candidatos() []string {
	bruto := append([]string{c.Modelo}, modelosFallback...)

	vistos := make(map[string]bool, len(bruto))
	candidatos := make([]string, 0, len(bruto))
	for _, m := range bruto {
		if m == "" || vistos[m] {
			continue
		}
		vistos[m] = true
		candidatos = append(candidatos, m)
	}
	return candidatos
}
