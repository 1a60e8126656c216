package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/engine"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
	"github.com/Sovrenmirror/sovrenai-workbench/internal/server"
)

var (
	serveHost string
	servePort int
	noCache   bool
	cacheDir  string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve exposes the reasoning engine over HTTP:
- POST /reason      full 8-stage reasoning
- POST /classify    ontology classification only
- GET  /tiers       tier table
- GET  /truth-floor Truth Floor axioms
- GET  /health      integrity check

Example:
  sovereign serve
  sovereign serve --port 9000 --llm-provider ollama --llm-model llama3.1:8b
  sovereign serve --no-cache`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "0.0.0.0", "listen address")
	serveCmd.Flags().IntVar(&servePort, "port", 8888, "listen port")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	serveCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (empty: memory only)")

	// LLM flags
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, xai, anthropic, ollama; empty disables LLM)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Server.Host = serveHost
	cfg.Server.Port = servePort
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.Output.Verbose = verbose
	if err := configureLLM(cfg); err != nil {
		return err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Sovereign API listening on %s:%d\n", cfg.Server.Host, cfg.Server.Port)
	if cfg.LLM.Provider != "" {
		fmt.Fprintf(os.Stderr, "LLM: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	} else {
		fmt.Fprintf(os.Stderr, "LLM: disabled (local classification and verification only)\n")
	}

	return server.New(eng, cfg).Run()
}
