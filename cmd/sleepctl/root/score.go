package root

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/assessment"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <instrument> <answer>...",
		Short: "Score a questionnaire",
		Long: "Each answer is the chosen option index of one question, in order.\n" +
			"Composite questions take one index per sub-question joined by '+', e.g. 1+3.",
		Example: "  sleepctl score isi 2 2 1 3 0 1 2 0",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			def, err := catalog.Get(args[0])
			if err != nil {
				return err
			}

			answers, err := parseAnswers(args[1:])
			if err != nil {
				return err
			}
			result, err := assessment.Score(def, assessment.FromSlices(answers))
			if err != nil {
				return err
			}
			return render(cmd, result)
		},
	}
	cmd.Flags().String("instruments", "", "directory with instrument YAML files (default: embedded catalog)")
	return cmd
}

// parseAnswers converte "2" e "1+3" em listas de índices
func parseAnswers(args []string) ([][]int, error) {
	answers := make([][]int, 0, len(args))
	for i, arg := range args {
		parts := strings.Split(arg, "+")
		choice := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("answer %d: %q is not an option index", i+1, arg)
			}
			choice = append(choice, n)
		}
		answers = append(answers, choice)
	}
	return answers, nil
}
