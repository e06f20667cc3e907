package assessment

import (
	"errors"
	"fmt"
)

var (
	ErrIncompleteAssessment     = errors.New("incomplete assessment")
	ErrInvalidAnswer            = errors.New("invalid answer")
	ErrInvalidBandConfiguration = errors.New("invalid band configuration")
	ErrInvalidQuestion          = errors.New("invalid question")
	ErrUnknownInstrument        = errors.New("unknown instrument")
)

// IncompleteAssessmentError aponta a primeira pergunta sem resposta.
// SubQuestionIndex é -1 para perguntas simples.
type IncompleteAssessmentError struct {
	QuestionIndex    int
	SubQuestionIndex int
}

func (e *IncompleteAssessmentError) Error() string {
	if e.SubQuestionIndex >= 0 {
		return fmt.Sprintf("question %d (sub-question %d) is not answered", e.QuestionIndex, e.SubQuestionIndex)
	}
	return fmt.Sprintf("question %d is not answered", e.QuestionIndex)
}

func (e *IncompleteAssessmentError) Is(target error) bool { return target == ErrIncompleteAssessment }

// InvalidAnswerError indica uma opção fora da lista da pergunta
type InvalidAnswerError struct {
	QuestionIndex int
	Option        int
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("question %d has no option %d", e.QuestionIndex, e.Option)
}

func (e *InvalidAnswerError) Is(target error) bool { return target == ErrInvalidAnswer }

// InvalidBandConfigurationError é um erro de configuração: as faixas não cobrem as pontuações possíveis
type InvalidBandConfigurationError struct {
	Key    string
	Reason string
}

func (e *InvalidBandConfigurationError) Error() string {
	return fmt.Sprintf("instrument %q: invalid score bands: %s", e.Key, e.Reason)
}

func (e *InvalidBandConfigurationError) Is(target error) bool {
	return target == ErrInvalidBandConfiguration
}

// InvalidQuestionError é um erro de configuração em uma pergunta
type InvalidQuestionError struct {
	Key           string
	QuestionIndex int
	Reason        string
}

func (e *InvalidQuestionError) Error() string {
	return fmt.Sprintf("instrument %q: question %d: %s", e.Key, e.QuestionIndex, e.Reason)
}

func (e *InvalidQuestionError) Is(target error) bool { return target == ErrInvalidQuestion }
