package cli

import (
	"fmt"

	"github.com/ppiankov/verbtrainer/internal/store"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	dataLang string
)

// dataCmd represents the data command
var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Inspect and lint the verb dataset",
}

var dataCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify dataset consistency",
	Long: `Check verifies the invariants the runtime assumes but never enforces:
- the forms, translations, and examples tables share one key set
- every verb has three non-empty conjugation forms
- every verb has at least one translation and 2-3 example sentences

Run this after editing the dataset; the server itself never repairs or
rejects inconsistent data.`,
	RunE: runDataCheck,
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataCheckCmd)

	dataCmd.PersistentFlags().StringVar(&dataDir, "data", "", "dataset directory (default ./data)")
	dataCmd.PersistentFlags().StringVar(&dataLang, "lang", "", "translation language code (default ru)")
}

func runDataCheck(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cmd.Flags().Changed("data") {
		cfg.Data.Dir = dataDir
	}
	if cmd.Flags().Changed("lang") {
		cfg.Data.Language = dataLang
	}

	st := store.NewStore(cfg.Data.Dir, cfg.Data.Language, nil)
	report, err := st.Verify()
	if err != nil {
		return err
	}

	if report.OK() {
		fmt.Printf("✓ %d verbs, all three tables consistent\n", report.Verbs)
		return nil
	}

	fmt.Printf("Dataset problems (%d verbs checked):\n", report.Verbs)
	for _, p := range report.Problems {
		fmt.Printf("  - %s\n", p)
	}
	return fmt.Errorf("%d dataset problems found", len(report.Problems))
}
