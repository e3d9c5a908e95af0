package cli

import (
	"fmt"
	"strings"

	"github.com/ppiankov/verbtrainer/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	verbsData string
	verbsLang string
)

// verbsCmd represents the verbs command
var verbsCmd = &cobra.Command{
	Use:   "verbs",
	Short: "List the verb inventory",
	Long: `List every verb in the dataset with its three reference forms and
translations, ordered by German collation rules (umlauts sort next to
their base vowels).`,
	RunE: runVerbs,
}

func init() {
	rootCmd.AddCommand(verbsCmd)

	verbsCmd.Flags().StringVar(&verbsData, "data", "", "dataset directory (default ./data)")
	verbsCmd.Flags().StringVar(&verbsLang, "lang", "", "translation language code (default ru)")
}

func runVerbs(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cmd.Flags().Changed("data") {
		cfg.Data.Dir = verbsData
	}
	if cmd.Flags().Changed("lang") {
		cfg.Data.Language = verbsLang
	}

	st := store.NewStore(cfg.Data.Dir, cfg.Data.Language, nil)
	forms, err := st.Forms()
	if err != nil {
		return err
	}
	translations, err := st.Translations()
	if err != nil {
		return err
	}

	infinitives := make([]string, 0, len(forms))
	for inf := range forms {
		infinitives = append(infinitives, inf)
	}
	collate.New(language.German).SortStrings(infinitives)

	for _, inf := range infinitives {
		f := forms[inf]
		line := fmt.Sprintf("%-16s %s, %s, %s", inf, f.Praesens, f.Praeteritum, f.Perfekt)
		if tr := translations[inf]; len(tr) > 0 {
			line += "  [" + strings.Join(tr, ", ") + "]"
		}
		fmt.Println(line)
	}

	fmt.Printf("\n%d verbs\n", len(infinitives))
	return nil
}
