package avaliacao

type AvaliacaoComQuestoesDTO struct {
	Avaliacao *Avaliacao          `json:"avaliacao"`
	Questoes  []*QuestaoAvaliacao `json:"questoes"`
}
