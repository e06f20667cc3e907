package assessment

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadInstrument(t *testing.T, key string) Definition {
	t.Helper()
	catalog, err := LoadCatalog()
	require.NoError(t, err)
	def, err := catalog.Get(key)
	require.NoError(t, err)
	return def
}

func single(options ...int) AnswerSet {
	set := AnswerSet{}
	for i, o := range options {
		set[i] = []int{o}
	}
	return set
}

func TestScore_ChronotypeDefinitelyMorning(t *testing.T) {
	def := loadInstrument(t, "meq")
	require.Len(t, def.Questions, 19)

	answers := single(2, 2, 2, 1, 3, 3, 3, 0, 0, 2, 1, 3, 0, 3, 0, 3, 1, 5, 1)

	result, err := Score(def, answers)
	require.NoError(t, err)
	assert.Equal(t, 72, result.TotalScore)
	assert.Equal(t, "Definitely morning type", result.Label)
	assert.Empty(t, result.Auxiliary)
}

func TestScore_InsomniaModerateWithGoal(t *testing.T) {
	def := loadInstrument(t, "isi")

	result, err := Score(def, single(3, 3, 3, 2, 2, 1, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, 15, result.TotalScore)
	assert.Equal(t, "Moderate", result.Label)
	assert.Equal(t, "Both", result.Auxiliary)

	// o objetivo não muda a pontuação
	other, err := Score(def, single(3, 3, 3, 2, 2, 1, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, result.TotalScore, other.TotalScore)
	assert.Equal(t, "Falling asleep faster", other.Auxiliary)
}

func TestLabelFor_InsomniaBoundaries(t *testing.T) {
	def := loadInstrument(t, "isi")
	cases := map[int]string{
		0: "None", 7: "None",
		8: "Mild", 14: "Mild",
		15: "Moderate", 21: "Moderate",
		22: "Severe", 28: "Severe",
	}
	for total, want := range cases {
		assert.Equal(t, want, LabelFor(def.Bands, total), "total %d", total)
	}
}

func TestLabelFor_ChronotypeBoundaries(t *testing.T) {
	def := loadInstrument(t, "meq")
	cases := map[int]string{
		19: "Definitely evening type", 30: "Definitely evening type",
		31: "Moderately evening type", 41: "Moderately evening type",
		42: "Neither type", 58: "Neither type",
		59: "Moderately morning type", 69: "Moderately morning type",
		70: "Definitely morning type", 86: "Definitely morning type",
	}
	for total, want := range cases {
		assert.Equal(t, want, LabelFor(def.Bands, total), "total %d", total)
	}
}

func TestLabelFor_UnorderedBandsScanAscending(t *testing.T) {
	bands := []Band{Above("high"), UpTo(10, "mid"), UpTo(5, "low")}
	assert.Equal(t, "low", LabelFor(bands, 5))
	assert.Equal(t, "mid", LabelFor(bands, 6))
	assert.Equal(t, "high", LabelFor(bands, 11))

	closed := []Band{UpTo(5, "low"), UpTo(10, "mid")}
	assert.Equal(t, "mid", LabelFor(closed, 99))
}

func TestScore_PositionalLookupWithNonMonotonicScores(t *testing.T) {
	def := Definition{
		Key: "custom",
		Questions: []Question{
			{Options: []string{"Not at all tired", "A little tired", "Fairly tired", "Very tired"}, Scores: []int{1, 2, 3, 5}},
			{Options: []string{"a", "b", "c", "d", "e"}, Scores: []int{1, 5, 4, 3, 2}},
		},
		Bands: []Band{UpTo(4, "low"), Above("high")},
	}

	result, err := Score(def, single(3, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, result.TotalScore)
	assert.Equal(t, "high", result.Label)

	result, err = Score(def, single(0, 4))
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalScore)
	assert.Equal(t, "low", result.Label)
}

func TestScore_IncompleteAssessment(t *testing.T) {
	def := loadInstrument(t, "isi")

	answers := single(0, 0, 0, 0, 0, 0, 0)
	_, err := Score(def, answers)
	require.Error(t, err)

	var incomplete *IncompleteAssessmentError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 7, incomplete.QuestionIndex, "informational goal question still needs an answer")
	assert.Equal(t, -1, incomplete.SubQuestionIndex)
	assert.ErrorIs(t, err, ErrIncompleteAssessment)

	delete(answers, 2)
	answers[4] = []int{-1}
	_, err = Score(def, answers)
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 2, incomplete.QuestionIndex, "first unanswered index wins")
}

func TestScore_CompositeQuestion(t *testing.T) {
	def := loadInstrument(t, "isi-composite")

	answers := AnswerSet{
		0: {4, 3, 2},
		1: {1},
		2: {2},
		3: {0},
		4: {3},
		5: {1},
	}
	result, err := Score(def, answers)
	require.NoError(t, err)
	assert.Equal(t, 15, result.TotalScore)
	assert.Equal(t, "Clinical insomnia (moderate severity)", result.Label)
	assert.Equal(t, "Staying asleep longer", result.Auxiliary)

	answers[0] = []int{4, 3}
	_, err = Score(def, answers)
	var incomplete *IncompleteAssessmentError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 0, incomplete.QuestionIndex)
	assert.Equal(t, 2, incomplete.SubQuestionIndex)
}

func TestScore_InvalidOption(t *testing.T) {
	def := loadInstrument(t, "meq-short")

	_, err := Score(def, single(0, 0, 6, 0, 0, 0))
	var invalid *InvalidAnswerError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 2, invalid.QuestionIndex)
	assert.Equal(t, 6, invalid.Option)
}

func TestScore_IdempotentAndConcurrent(t *testing.T) {
	def := loadInstrument(t, "meq")
	answers := single(0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 4, 7, 3)

	first, err := Score(def, answers)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			again, err := Score(def, answers)
			assert.NoError(t, err)
			assert.Equal(t, first, again)
		}()
	}
	wg.Wait()
}

func TestProgress(t *testing.T) {
	def := loadInstrument(t, "isi-composite")

	answered, total, next := Progress(def, AnswerSet{})
	assert.Equal(t, 0, answered)
	assert.Equal(t, 6, total)
	assert.Equal(t, 0, next)

	answered, _, next = Progress(def, AnswerSet{0: {1, 1, 1}, 1: {0}, 3: {2}})
	assert.Equal(t, 3, answered)
	assert.Equal(t, 2, next)

	answered, _, next = Progress(def, AnswerSet{0: {1, 1, 1}, 1: {0}, 2: {0}, 3: {2}, 4: {0}, 5: {0}})
	assert.Equal(t, 6, answered)
	assert.Equal(t, -1, next)
}

func TestFromSlices(t *testing.T) {
	set := FromSlices([][]int{{1}, nil, {0, 2, 1}})
	assert.Equal(t, AnswerSet{0: {1}, 2: {0, 2, 1}}, set)
}
