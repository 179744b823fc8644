package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"kleo/config"
	"kleo/generator"
	"kleo/profile"
	"kleo/server"
)

func main() {
	configPath := flag.String("config", "config.json", "path to config.json")
	addr := flag.String("addr", "", "http listen address (overrides config.server_addr)")
	offline := flag.Bool("offline", false, "use the mock model client (no external calls)")
	verbose := flag.Bool("v", false, "enable debug logs")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Offline runs work without a config file.
		if !*offline {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = config.Config{LLM: &config.LLMConfig{Provider: "mock"}}
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	client, err := buildClient(cfg, *offline)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	orch, err := generator.NewOrchestrator(client, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	profiles, err := buildProfileStore(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	srv, err := server.New(orch, profiles, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	listen := cfg.ServerAddr
	if *addr != "" {
		listen = *addr
	}
	if listen == "" {
		listen = ":8080"
	}
	log.WithField("addr", listen).Info("starting studio server")
	if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildClient(cfg config.Config, offline bool) (generator.Client, error) {
	if offline {
		return &generator.MockClient{}, nil
	}
	settings := &generator.Settings{
		Provider:   cfg.LLM.Provider,
		Model:      cfg.LLM.Model,
		FlashModel: cfg.LLM.FlashModel,
		ImageModel: cfg.LLM.ImageModel,
		APIKey:     cfg.LLM.APIKey,
		BaseURL:    cfg.LLM.BaseURL,
	}
	switch cfg.LLM.Provider {
	case "genai":
		return generator.NewGenAIClient(settings)
	case "openai":
		return generator.NewOpenAIClient(settings)
	case "deepseek":
		// DeepSeek 提供 OpenAI 兼容接口，需填写 base_url。
		if settings.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAIClient(settings)
	case "mock":
		return &generator.MockClient{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}

func buildProfileStore(cfg config.Config) (profile.Store, error) {
	if cfg.Profile == nil {
		return profile.NewFileStore("brand.json")
	}
	switch cfg.Profile.Driver {
	case "", "file":
		path := cfg.Profile.Path
		if path == "" {
			path = "brand.json"
		}
		return profile.NewFileStore(path)
	case "redis":
		if cfg.Profile.RedisAddr == "" {
			return nil, fmt.Errorf("profile driver redis requires redis_addr")
		}
		client := redis.NewClient(&redis.Options{Addr: cfg.Profile.RedisAddr})
		return profile.NewRedisStore(client, cfg.Profile.RedisKey)
	default:
		return nil, fmt.Errorf("profile driver %s not supported", cfg.Profile.Driver)
	}
}
