package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/expensehub/bill-extract/internal/expense"
	"github.com/expensehub/bill-extract/internal/extraction"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	fs := ff.NewFlagSet("bill-extract")
	var (
		port            = fs.IntLong("port", 8080, "HTTP server port")
		origin          = fs.StringLong("origin", "*", "Allowed CORS origin")
		keywordsPath    = fs.StringLong("keywords", "", "Keyword table YAML path (empty uses the embedded table)")
		extractorType   = fs.StringLong("extractor", "heuristic", "Extractor type: 'heuristic' or 'gemini'")
		geminiKey       = fs.StringLong("gemini-key", "", "Google Gemini API key (or set GEMINI_API_KEY env var)")
		geminiModel     = fs.StringLong("gemini-model", "gemini-2.5-pro", "Google Gemini model name")
		delegateURL     = fs.StringLong("delegate-url", "", "Secondary extraction service URL for Spanish and Portuguese documents (empty disables forwarding)")
		delegateTimeout = fs.IntLong("delegate-timeout", 10, "Delegate request timeout in seconds")
		delegateRetries = fs.IntLong("delegate-retries", 3, "Delegate request attempts before giving up")
		authUser        = fs.StringLong("auth-user", "", "Basic auth username (optional)")
		authPass        = fs.StringLong("auth-pass", "", "Basic auth password (optional)")
		showVersion     = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("BILL_EXTRACT"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Check version flag after parsing
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Load keyword table
	keywords := extraction.DefaultKeywords()
	if *keywordsPath != "" {
		var err error
		keywords, err = extraction.LoadKeywords(*keywordsPath)
		if err != nil {
			slog.Error("Failed to load keyword table", "path", *keywordsPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Loaded keyword table", "path", *keywordsPath)
	}

	// Initialize extractor based on type
	var extractor extraction.Extractor
	switch *extractorType {
	case "heuristic":
		extractor = extraction.NewEngine(keywords)
	case "gemini":
		// Get Gemini API key from flag or environment
		apiKey := *geminiKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			slog.Error("Gemini API key is required. Set --gemini-key flag or GEMINI_API_KEY environment variable")
			os.Exit(1)
		}
		slog.Info("Initializing Gemini extractor...", "model", *geminiModel)
		var err error
		extractor, err = extraction.NewGemini(apiKey, *geminiModel)
		if err != nil {
			slog.Error("Failed to initialize Gemini", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("Invalid extractor type", "type", *extractorType, "valid", "heuristic or gemini")
		os.Exit(1)
	}
	defer extractor.Close()

	// Initialize delegate client when configured
	var delegate expense.Delegate
	if *delegateURL != "" {
		d, err := extraction.NewDelegate(*delegateURL, time.Duration(*delegateTimeout)*time.Second, *delegateRetries)
		if err != nil {
			slog.Error("Failed to initialize delegate client", "error", err)
			os.Exit(1)
		}
		slog.Info("Delegate forwarding enabled", "url", *delegateURL)
		delegate = d
	}

	// Initialize service
	expenseService := expense.NewService(extractor, delegate)

	// Initialize server
	basicAuth := expense.BasicAuth{
		Username: *authUser,
		Password: *authPass,
	}
	server := expense.NewServer(expenseService, basicAuth, *origin)

	// Start server in goroutine
	addr := fmt.Sprintf(":%d", *port)
	go func() {
		if err := server.Start(addr); err != nil {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Server started", "address", fmt.Sprintf("http://localhost%s", addr))
	if *authUser != "" || *authPass != "" {
		slog.Info("Basic auth enabled", "user", *authUser)
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down...")
}
