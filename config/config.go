// Package config loads the studio configuration from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"os"
)

// Config 顶层配置。
type Config struct {
	ServerAddr string         `json:"server_addr,omitempty"`
	LLM        *LLMConfig     `json:"llm,omitempty"`
	Profile    *ProfileConfig `json:"profile,omitempty"`
	LogLevel   string         `json:"log_level,omitempty"`
}

// LLMConfig 生成模块的模型配置。
type LLMConfig struct {
	Provider   string `json:"provider,omitempty"` // genai | openai | deepseek | mock
	Model      string `json:"model,omitempty"`
	FlashModel string `json:"flash_model,omitempty"`
	ImageModel string `json:"image_model,omitempty"`
	APIKey     string `json:"api_key,omitempty"`
	BaseURL    string `json:"base_url,omitempty"`
}

// ProfileConfig 品牌画像的存储位置。
type ProfileConfig struct {
	Driver    string `json:"driver,omitempty"` // file | redis
	Path      string `json:"path,omitempty"`
	RedisAddr string `json:"redis_addr,omitempty"`
	RedisKey  string `json:"redis_key,omitempty"`
}

// Load reads JSON config from disk.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.LLM == nil || cfg.LLM.Provider == "" {
		return Config{}, errors.New("config must include llm.provider")
	}
	return cfg, nil
}
