package root

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/assessment"
	"github.com/PavaniTiago/sleep-coach-api/internal/domain/timeline"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	out, err := run(t, "score", "isi", "2", "2", "2", "2", "2", "2", "2", "0")
	require.NoError(t, err)

	var result assessment.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 14, result.TotalScore)
	assert.Equal(t, "Mild", result.Label)
}

func TestScoreCommand_YAMLOutput(t *testing.T) {
	out, err := run(t, "score", "isi", "-o", "yaml", "4", "4", "4", "4", "4", "4", "4", "0")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, 28, result["totalscore"])
	assert.Equal(t, "Severe", result["label"])
}

func TestScoreCommand_Errors(t *testing.T) {
	_, err := run(t, "score", "unknown", "1")
	assert.ErrorIs(t, err, assessment.ErrUnknownInstrument)

	_, err = run(t, "score", "isi", "x")
	assert.ErrorContains(t, err, "not an option index")

	_, err = run(t, "score", "isi", "1", "1")
	var incomplete *assessment.IncompleteAssessmentError
	assert.ErrorAs(t, err, &incomplete)
}

func TestParseAnswers_Composite(t *testing.T) {
	answers, err := parseAnswers([]string{"1", "0+3"})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {0, 3}}, answers)
}

func TestTimelineCommand_OvernightShift(t *testing.T) {
	out, err := run(t, "timeline", "--start", "2025-03-10", "--days", "2", "--shift", "2025-03-10,22:00,06:00")
	require.NoError(t, err)

	var days []timeline.Day
	require.NoError(t, json.Unmarshal([]byte(out), &days))
	require.Len(t, days, 2)

	var shifts []timeline.Block
	for _, d := range days {
		for _, b := range d.Blocks {
			if b.Type == timeline.BlockShift {
				shifts = append(shifts, b)
			}
		}
	}
	require.Len(t, shifts, 2)
	assert.Equal(t, "2025-03-10", shifts[0].Date)
	assert.True(t, shifts[0].ContinuesToNextDay)
	assert.Equal(t, "2025-03-11", shifts[1].Date)
	assert.True(t, shifts[1].ContinuesFromPreviousDay)
}

func TestTimelineCommand_Errors(t *testing.T) {
	_, err := run(t, "timeline", "--shift", "2025-03-10,22:00")
	assert.ErrorContains(t, err, "expected DATE,START,END")

	_, err = run(t, "timeline", "--start", "2025-03-10", "--sleep", "23:00")
	assert.ErrorContains(t, err, "used together")
}

func TestInstrumentsCommand(t *testing.T) {
	out, err := run(t, "instruments")
	require.NoError(t, err)

	var list []instrumentSummary
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list, 4)
}
