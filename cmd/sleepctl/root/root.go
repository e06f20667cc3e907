package root

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/assessment"
)

const Version = "0.1.0"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sleepctl",
		Short:         "Offline tools for the sleep coach engines",
		Long:          "sleepctl scores questionnaires and projects shift timelines without a database.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format: json or yaml")

	rootCmd.AddCommand(
		newInstrumentsCmd(),
		newScoreCmd(),
		newTimelineCmd(),
	)
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
		os.Exit(1)
	}
}

// render escreve v no formato escolhido em --output
func render(cmd *cobra.Command, v any) error {
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), format, v)
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func loadCatalog(cmd *cobra.Command) (*assessment.Catalog, error) {
	dir, err := cmd.Flags().GetString("instruments")
	if err != nil || dir == "" {
		return assessment.LoadCatalog()
	}
	return assessment.LoadCatalogFS(os.DirFS(dir), ".")
}
