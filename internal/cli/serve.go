package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/verbtrainer/internal/quiz"
	"github.com/ppiankov/verbtrainer/internal/server"
	"github.com/ppiankov/verbtrainer/internal/store"
	"github.com/spf13/cobra"
)

var (
	serveAddr     string
	serveData     string
	serveLang     string
	serveFrontend string
	serveRate     float64
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the quiz HTTP server",
	Long: `Serve starts the quiz backend:
- GET  /api/health          reports whether the verb dataset loads
- GET  /api/session/start   starts a session of randomly drawn verbs
- POST /api/session/submit  grades submitted conjugations

Sessions are stateless: the session ID is an opaque token the client
round-trips on submission, never validated server-side.

Example:
  verbtrainer serve
  verbtrainer serve --addr :9000 --data ./data --lang ru`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8000)")
	serveCmd.Flags().StringVar(&serveData, "data", "", "dataset directory (default ./data)")
	serveCmd.Flags().StringVar(&serveLang, "lang", "", "translation language code (default ru)")
	serveCmd.Flags().StringVar(&serveFrontend, "frontend", "", "static frontend directory (default ./frontend)")
	serveCmd.Flags().Float64Var(&serveRate, "rate-limit", 0, "requests/second per client, 0 to disable (default 20)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	// Flags override config file and environment
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = serveAddr
	}
	if cmd.Flags().Changed("data") {
		cfg.Data.Dir = serveData
	}
	if cmd.Flags().Changed("lang") {
		cfg.Data.Language = serveLang
	}
	if cmd.Flags().Changed("frontend") {
		cfg.Server.FrontendDir = serveFrontend
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.Server.RateLimit = serveRate
	}

	st := store.NewStore(cfg.Data.Dir, cfg.Data.Language, nil)

	// Warm the table caches eagerly so the first request pays no load cost.
	// A failure here is not fatal: the health endpoint keeps reporting it.
	if count, err := st.Count(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: verb dataset not loadable: %v\n", err)
	} else if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d verbs from %s\n", count, cfg.Data.Dir)
	}

	composer := quiz.NewComposer(st, nil)
	grader := quiz.NewGrader(st)
	srv := server.New(cfg, st, composer, grader)

	if verbose {
		fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Server.Addr)
	}
	return srv.Run()
}
