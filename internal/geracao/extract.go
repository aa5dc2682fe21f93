package geracao

import "strings"

// ExtractJSON isola o payload JSON embutido na resposta bruta do modelo.
// Modelos costumam cercar o JSON com cercas de Markdown ou prosa, mesmo
// instruídos a não fazê-lo.
//
// Preferência: objeto {...} que envolve a resposta; depois array [...],
// embrulhado como {"questoes": ...} para uniformizar o tratamento; por
// fim o texto cru aparado, cujo parse falhará e acionará o fallback de
// linhas em ParseQuestoes.
func ExtractJSON(bruto string) string {
	texto := stripCodeFences(bruto)

	abreObj := strings.Index(texto, "{")
	abreArr := strings.Index(texto, "[")

	if abreObj >= 0 && (abreArr < 0 || abreObj < abreArr) {
		if fim, ok := fechamentoBalanceado(texto, abreObj); ok {
			return texto[abreObj : fim+1]
		}
	}

	if abreArr >= 0 {
		if fim := strings.LastIndex(texto, "]"); fim > abreArr {
			return `{"questoes":` + texto[abreArr:fim+1] + `}`
		}
	}

	return strings.TrimSpace(texto)
}

// stripCodeFences remove cercas ``` (com tag de linguagem opcional).
// Idempotente: aplicar duas vezes dá o mesmo resultado.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		// tag de linguagem na mesma linha da cerca, ex: ```json
		if nl := strings.Index(s, "\n"); nl >= 0 {
			primeira := strings.TrimSpace(s[:nl])
			if primeira == "" || !strings.ContainsAny(primeira, "{[\"") {
				s = s[nl+1:]
			}
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// fechamentoBalanceado encontra a chave que fecha o objeto aberto em
// inicio, ignorando chaves dentro de strings JSON.
func fechamentoBalanceado(s string, inicio int) (int, bool) {
	profundidade := 0
	emString := false
	escapado := false

	for i := inicio; i < len(s); i++ {
		c := s[i]

		if emString {
			switch {
			case escapado:
				escapado = false
			case c == '\\':
				escapado = true
			case c == '"':
				emString = false
			}
			continue
		}

		switch c {
		case '"':
			emString = true
		case '{':
			profundidade++
		case '}':
			profundidade--
			if profundidade == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
