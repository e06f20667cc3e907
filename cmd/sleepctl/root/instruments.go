package root

import (
	"github.com/spf13/cobra"
)

type instrumentSummary struct {
	Key       string `json:"key" yaml:"key"`
	Name      string `json:"name" yaml:"name"`
	Kind      string `json:"kind" yaml:"kind"`
	Questions int    `json:"questions" yaml:"questions"`
	MinScore  int    `json:"min_score" yaml:"min_score"`
	MaxScore  int    `json:"max_score" yaml:"max_score"`
}

func newInstrumentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instruments",
		Short: "List the available questionnaires",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			var out []instrumentSummary
			for _, def := range catalog.List() {
				out = append(out, instrumentSummary{
					Key:       def.Key,
					Name:      def.Name,
					Kind:      def.Kind,
					Questions: len(def.Questions),
					MinScore:  def.MinScore(),
					MaxScore:  def.MaxScore(),
				})
			}
			return render(cmd, out)
		},
	}
	cmd.Flags().String("instruments", "", "directory with instrument YAML files (default: embedded catalog)")
	return cmd
}
