package material

import (
	"fmt"
	"strings"
)

// BuildPromptMaterial segue a mesma disciplina do gerador de questões:
// função pura, campos vazios omitidos, ordem fixa das linhas.
func BuildPromptMaterial(req GerarMaterialRequest) string {
	var b strings.Builder

	b.WriteString("Você é um assistente pedagógico para professores brasileiros.\n")

	switch req.Tipo {
	case TipoPlanoAula:
		b.WriteString("Elabore um plano de aula completo, com objetivos de aprendizagem, conteúdo programático, metodologia, recursos necessários e avaliação.\n")
	case TipoSlides:
		b.WriteString("Elabore o roteiro de uma apresentação de slides: um título e, para cada slide, um cabeçalho com os pontos principais em tópicos.\n")
	case TipoRubrica:
		b.WriteString("Elabore uma rubrica de correção em tabela, com critérios, níveis de desempenho e descritores claros para cada nível.\n")
	}

	if req.Tema != "" {
		fmt.Fprintf(&b, "Tema: %s\n", req.Tema)
	}
	if req.Disciplina != "" {
		fmt.Fprintf(&b, "Disciplina: %s\n", req.Disciplina)
	}
	if req.Serie != "" {
		fmt.Fprintf(&b, "Série/Ano: %s\n", req.Serie)
	}
	if req.Duracao != "" {
		fmt.Fprintf(&b, "Duração prevista: %s\n", req.Duracao)
	}
	if req.Objetivo != "" {
		fmt.Fprintf(&b, "Objetivo pedagógico: %s\n", req.Objetivo)
	}

	b.WriteString("Responda em Markdown, em português, sem comentários fora do material pedido.\n")

	return b.String()
}
