package geracao

import (
	"fmt"
	"strings"

	"github.com/avaliapro/avaliapro-lambda/internal/ia"
)

// BuildPrompt monta a instrução de geração a partir do formulário.
// Função pura: campos vazios são omitidos e a ordem das linhas é fixa,
// então a mesma requisição produz sempre o mesmo prompt.
func BuildPrompt(req GerarQuestoesRequest) string {
	var b strings.Builder

	b.WriteString("Você é um assistente pedagógico que elabora questões de avaliação para professores brasileiros.\n")

	if req.Tema != "" {
		fmt.Fprintf(&b, "Tema: %s\n", req.Tema)
	}
	if req.Disciplina != "" {
		fmt.Fprintf(&b, "Disciplina: %s\n", req.Disciplina)
	}
	if req.Serie != "" {
		fmt.Fprintf(&b, "Série/Ano: %s\n", req.Serie)
	}
	if req.Dificuldade != "" {
		fmt.Fprintf(&b, "Nível de dificuldade: %s\n", req.Dificuldade)
	}
	if req.Objetivo != "" {
		fmt.Fprintf(&b, "Objetivo pedagógico: %s\n", req.Objetivo)
	}
	if req.QtdObjetivas > 0 || req.QtdDissertativas > 0 {
		fmt.Fprintf(&b, "Das questões, %d devem ser objetivas (múltipla escolha com %d alternativas) e %d dissertativas.\n",
			req.QtdObjetivas, numAlternativas, req.QtdDissertativas)
	}
	if req.ValorTotal > 0 {
		fmt.Fprintf(&b, "A prova vale %.2f pontos no total, distribuídos entre as questões.\n", req.ValorTotal)
	}
	if nomes := nomesAnexos(req.Anexos); len(nomes) > 0 {
		fmt.Fprintf(&b, "Baseie-se também no material de apoio anexado: %s.\n", strings.Join(nomes, ", "))
	}

	fmt.Fprintf(&b, "Gere exatamente %d questões.\n", req.Quantidade)
	b.WriteString(`Responda APENAS com um array JSON de objetos com os campos "tipo" ("objetiva" ou "dissertativa"), "enunciado", "alternativas" (array de strings), "respostaCorreta" e "pontos".` + "\n")
	b.WriteString(`Questões dissertativas devem omitir o campo "alternativas" e usar "respostaCorreta" como gabarito resumido da resposta esperada.` + "\n")
	fmt.Fprintf(&b, "Emita exatamente %d objetos no array e nenhum texto narrativo fora do JSON.\n", req.Quantidade)

	return b.String()
}

func nomesAnexos(anexos []ia.Anexo) []string {
	var nomes []string
	for _, a := range anexos {
		if a.Nome != "" {
			nomes = append(nomes, a.Nome)
		}
	}
	return nomes
}
