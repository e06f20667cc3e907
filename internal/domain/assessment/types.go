// Package assessment pontua questionários de múltipla escolha (cronotipo, insônia)
// a partir de definições declarativas. Todas as funções são puras.
package assessment

// Question é um item do questionário. Scores é paralelo a Options.
// Quando SubQuestions não está vazio, cada sub-pergunta recebe uma opção
// e as pontuações são somadas.
type Question struct {
	ID            string   `json:"id" yaml:"id"`
	Text          string   `json:"text" yaml:"text"`
	Options       []string `json:"options" yaml:"options"`
	Scores        []int    `json:"scores" yaml:"scores"`
	SubQuestions  []string `json:"sub_questions,omitempty" yaml:"sub_questions"`
	Informational bool     `json:"informational,omitempty" yaml:"informational"`
}

// Selections retorna quantas respostas a pergunta exige
func (q Question) Selections() int {
	if len(q.SubQuestions) > 0 {
		return len(q.SubQuestions)
	}
	return 1
}

// Band associa um limite superior inclusivo a um rótulo. Max nil = faixa aberta (topo).
type Band struct {
	Max   *int   `json:"max,omitempty" yaml:"max"`
	Label string `json:"label" yaml:"label"`
}

// UpTo cria uma faixa fechada
func UpTo(max int, label string) Band {
	return Band{Max: &max, Label: label}
}

// Above cria a faixa aberta do topo
func Above(label string) Band {
	return Band{Label: label}
}

// Definition é um instrumento completo
type Definition struct {
	Key         string     `json:"key" yaml:"key"`
	Name        string     `json:"name" yaml:"name"`
	Kind        string     `json:"kind" yaml:"kind"`
	Description string     `json:"description,omitempty" yaml:"description"`
	Questions   []Question `json:"questions" yaml:"questions"`
	Bands       []Band     `json:"bands" yaml:"bands"`
}

// Kinds conhecidos
const (
	KindChronotype = "chronotype"
	KindInsomnia   = "insomnia"
)

// AnswerSet mapeia o índice da pergunta para as opções escolhidas
// (uma por sub-pergunta). Índices ausentes ou negativos = não respondida.
type AnswerSet map[int][]int

// FromSlices converte a forma de lista usada pela API ([[2],[1],[0,3,1],...])
func FromSlices(answers [][]int) AnswerSet {
	set := make(AnswerSet, len(answers))
	for i, selected := range answers {
		if selected == nil {
			continue
		}
		set[i] = append([]int(nil), selected...)
	}
	return set
}

// Result é o resultado derivado de um AnswerSet completo
type Result struct {
	TotalScore int    `json:"total_score"`
	Label      string `json:"label"`
	Auxiliary  string `json:"auxiliary,omitempty"`
}
