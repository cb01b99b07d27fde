// Package main provides the toolbot command-line chat.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/minhyannv/toolbot-go/pkg/agent"
	"github.com/minhyannv/toolbot-go/pkg/completion"
	configpkg "github.com/minhyannv/toolbot-go/pkg/config"
	loggerpkg "github.com/minhyannv/toolbot-go/pkg/logger"
	"github.com/minhyannv/toolbot-go/pkg/tagger"
)

// main is the program entry point.
func main() {
	_ = godotenv.Load()

	config, err := parseCLIConfig(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sessionID := uuid.New()
	appLogger := loggerpkg.NewWriterLogger(os.Stderr, loggerpkg.Options{
		Verbose: config.Verbose,
		Fields:  map[string]any{"session_id": sessionID.String()},
	})

	bot, err := agent.New(tagger.New(), completion.New(config, appLogger), agent.WithLogger(appLogger))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	session := agent.NewSession(sessionID, bot, nil, appLogger)

	if err := runREPL(context.Background(), session, replOptions{
		LogPath: config.LogPath,
		Logger:  appLogger,
	}, os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseCLIConfig layers defaults, the optional YAML file, environment and
// flags, in that order of precedence.
func parseCLIConfig(args []string, getenv func(string) string) (configpkg.Config, error) {
	defaults := configpkg.DefaultConfig()

	fs := flag.NewFlagSet("toolbot", flag.ContinueOnError)
	configFile := fs.String("config", "", "Optional YAML config file")
	logFile := fs.String("log_file", "", "Path of the JSON interaction log written on exit (default "+defaults.LogPath+")")
	model := fs.String("model", "", "Completion model (default "+defaults.Model+")")
	verbose := fs.Bool("verbose", false, "Verbose routing and request logging")
	if err := fs.Parse(args); err != nil {
		return configpkg.Config{}, err
	}

	cfg := defaults
	if path := strings.TrimSpace(*configFile); path != "" {
		loaded, err := configpkg.LoadFile(path, cfg)
		if err != nil {
			return configpkg.Config{}, err
		}
		cfg = loaded
	}

	cfg.APIKey = strings.TrimSpace(getenv("GROQ_API_KEY"))
	if v := strings.TrimSpace(getenv("GROQ_BASE_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(getenv("GROQ_MODEL")); v != "" {
		cfg.Model = v
	}

	if v := strings.TrimSpace(*logFile); v != "" {
		cfg.LogPath = v
	}
	if v := strings.TrimSpace(*model); v != "" {
		cfg.Model = v
	}
	if *verbose {
		cfg.Verbose = true
	}
	return configpkg.Normalize(cfg), nil
}
