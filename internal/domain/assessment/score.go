package assessment

import (
	"sort"
	"strings"
)

// Score soma as pontuações posicionais de todas as perguntas pontuáveis e
// resolve o rótulo pela primeira faixa (ordem crescente) cujo limite cobre o total.
// Perguntas informativas também precisam estar respondidas; a opção escolhida
// vai para Auxiliary e nunca entra no total.
func Score(def Definition, answers AnswerSet) (Result, error) {
	if len(def.Bands) == 0 {
		return Result{}, &InvalidBandConfigurationError{Key: def.Key, Reason: "no bands"}
	}

	total := 0
	var auxiliary []string

	for qi, q := range def.Questions {
		selected, err := selections(qi, q, answers)
		if err != nil {
			return Result{}, err
		}

		if q.Informational {
			for _, option := range selected {
				auxiliary = append(auxiliary, q.Options[option])
			}
			continue
		}

		for _, option := range selected {
			total += q.Scores[option]
		}
	}

	return Result{
		TotalScore: total,
		Label:      LabelFor(def.Bands, total),
		Auxiliary:  strings.Join(auxiliary, "; "),
	}, nil
}

// selections valida e retorna as opções escolhidas para a pergunta qi
func selections(qi int, q Question, answers AnswerSet) ([]int, error) {
	required := q.Selections()
	given := answers[qi]

	selected := make([]int, 0, required)
	for sub := 0; sub < required; sub++ {
		if sub >= len(given) || given[sub] < 0 {
			subIndex := -1
			if len(q.SubQuestions) > 0 {
				subIndex = sub
			}
			return nil, &IncompleteAssessmentError{QuestionIndex: qi, SubQuestionIndex: subIndex}
		}
		if given[sub] >= len(q.Options) || given[sub] >= len(q.Scores) {
			return nil, &InvalidAnswerError{QuestionIndex: qi, Option: given[sub]}
		}
		selected = append(selected, given[sub])
	}

	return selected, nil
}

// LabelFor percorre as faixas em ordem crescente de limite e devolve a primeira
// que cobre o total. Acima de todos os limites vale o rótulo da última faixa.
func LabelFor(bands []Band, total int) string {
	if len(bands) == 0 {
		return ""
	}

	ordered := append([]Band(nil), bands...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Max == nil {
			return false
		}
		if ordered[j].Max == nil {
			return true
		}
		return *ordered[i].Max < *ordered[j].Max
	})

	for _, b := range ordered {
		if b.Max == nil || total <= *b.Max {
			return b.Label
		}
	}
	return ordered[len(ordered)-1].Label
}

// Progress informa quantas perguntas já estão completas e qual é a próxima
// pendente (-1 quando todas foram respondidas). Usado pelo assistente passo a passo.
func Progress(def Definition, answers AnswerSet) (answered, total, next int) {
	total = len(def.Questions)
	next = -1
	for qi, q := range def.Questions {
		if _, err := selections(qi, q, answers); err != nil {
			if next == -1 {
				next = qi
			}
			continue
		}
		answered++
	}
	return answered, total, next
}
