package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"siaga/chat"
	"siaga/config"
	"siaga/model"
	"siaga/provider"
	"siaga/ui"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

func main() {
	if code, done := parseFlags(os.Args[1:], os.Stdout); done {
		os.Exit(code)
	}

	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not read .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	config.InitDebugLog(config.GetCacheDir())
	config.Debugf("Config: selection=%s mode=%s gemini=%s groq=%s", cfg.Selection, cfg.Mode, cfg.GeminiModel, cfg.GroqModel)

	var notice string
	kb, err := config.LoadKeybindings(config.GetConfigDir())
	if err != nil {
		config.Debugf("Keybindings: %v (using defaults)", err)
		notice = fmt.Sprintf("keybindings.toml tidak valid, memakai default.\n\n%v", err)
		kb = config.DefaultKeybindings()
	}

	router := provider.NewRouter(provider.RouterConfig{
		GeminiBaseURL: cfg.GeminiBaseURL,
		GroqBaseURL:   cfg.GroqBaseURL,
		Timeout:       cfg.RequestTimeout,
	})
	// a turn may need two calls when Auto falls back
	svc := chat.NewService(router, 2*cfg.RequestTimeout)
	session := model.NewSession(cfg.Settings())

	view := ui.NewAppView(cfg, kb, svc, session, Version, License)
	if notice != "" {
		view = view.WithNotice("Keybindings", notice)
	}

	p := tea.NewProgram(view, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running siaga: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags handles -version and -help. done reports that the program should
// exit with code instead of starting the UI.
func parseFlags(args []string, out io.Writer) (code int, done bool) {
	fset := flag.NewFlagSet("siaga", flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	showVersion := fset.Bool("version", false, "Show version information")
	showHelp := fset.Bool("help", false, "Show help")

	if err := fset.Parse(args); err != nil {
		fmt.Fprintf(out, "siaga: %v\n\n", err)
		printHelp(out)
		return 2, true
	}

	if *showVersion {
		fmt.Fprintf(out, "siaga %s (%s)\n", Version, License)
		return 0, true
	}

	if *showHelp {
		printHelp(out)
		return 0, true
	}

	return 0, false
}

func printHelp(out io.Writer) {
	helpText := `Siaga - asisten kesiapsiagaan bencana di terminal

Usage:
  siaga [options]

Options:
  --version    Show version information
  --help       Show this help message

Environment:
  GOOGLE_API_KEY / GEMINI_API_KEY   Gemini API key
  GROQ_API_KEY                      Groq API key
  SIAGA_PROVIDER                    auto | gemini | groq
  SIAGA_MODE                        now_action | preparedness_plan
  SIAGA_STYLE                       formal | casual
  SIAGA_TEMPERATURE                 0.0 - 1.0
  SIAGA_GEMINI_MODEL, SIAGA_GROQ_MODEL
  SIAGA_CONFIG_DIR                  override the config directory
  SIAGA_DEBUG=1                     write a debug log to the cache directory

A .env file in the working directory is read at startup.
Keys entered in the settings panel live in memory only.
`
	fmt.Fprint(out, helpText)
}
