package assessment

import "fmt"

// MinScore retorna a menor pontuação alcançável
func (d Definition) MinScore() int {
	total := 0
	for _, q := range d.Questions {
		if q.Informational || len(q.Scores) == 0 {
			continue
		}
		lowest := q.Scores[0]
		for _, s := range q.Scores[1:] {
			lowest = min(lowest, s)
		}
		total += lowest * q.Selections()
	}
	return total
}

// MaxScore retorna a maior pontuação alcançável
func (d Definition) MaxScore() int {
	total := 0
	for _, q := range d.Questions {
		if q.Informational || len(q.Scores) == 0 {
			continue
		}
		highest := q.Scores[0]
		for _, s := range q.Scores[1:] {
			highest = max(highest, s)
		}
		total += highest * q.Selections()
	}
	return total
}

// Validate verifica a definição. Deve ser chamada na carga do catálogo:
// erros aqui são de programação/configuração, não de entrada do usuário.
func (d Definition) Validate() error {
	if len(d.Questions) == 0 {
		return &InvalidQuestionError{Key: d.Key, QuestionIndex: -1, Reason: "no questions"}
	}

	for i, q := range d.Questions {
		if len(q.Options) == 0 {
			return &InvalidQuestionError{Key: d.Key, QuestionIndex: i, Reason: "no options"}
		}
		if len(q.Options) != len(q.Scores) {
			return &InvalidQuestionError{
				Key:           d.Key,
				QuestionIndex: i,
				Reason:        fmt.Sprintf("%d options but %d scores", len(q.Options), len(q.Scores)),
			}
		}
		if q.Informational {
			for _, s := range q.Scores {
				if s != 0 {
					return &InvalidQuestionError{Key: d.Key, QuestionIndex: i, Reason: "informational question must score 0"}
				}
			}
		}
	}

	return d.validateBands()
}

func (d Definition) validateBands() error {
	if len(d.Bands) == 0 {
		return &InvalidBandConfigurationError{Key: d.Key, Reason: "no bands"}
	}

	last := len(d.Bands) - 1
	for i, b := range d.Bands {
		if b.Label == "" {
			return &InvalidBandConfigurationError{Key: d.Key, Reason: fmt.Sprintf("band %d has no label", i)}
		}
		if b.Max == nil {
			if i != last {
				return &InvalidBandConfigurationError{Key: d.Key, Reason: fmt.Sprintf("band %d is open-ended but is not the last band", i)}
			}
			continue
		}
		if i > 0 && d.Bands[i-1].Max != nil && *b.Max <= *d.Bands[i-1].Max {
			return &InvalidBandConfigurationError{Key: d.Key, Reason: fmt.Sprintf("band %d does not ascend", i)}
		}
	}

	if top := d.Bands[last].Max; top != nil && *top < d.MaxScore() {
		return &InvalidBandConfigurationError{
			Key:    d.Key,
			Reason: fmt.Sprintf("scores %d..%d are not covered by any band", *top+1, d.MaxScore()),
		}
	}

	return nil
}
