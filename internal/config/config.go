package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zhouzirui/folio/backend/internal/model/knowledge"
	"github.com/zhouzirui/folio/backend/pkg/utils"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Chat    ChatConfig
	Contact ContactConfig
	Owner   string
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	contact, err := loadContactConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		Log:     logCfg,
		Chat:    chat,
		Contact: contact,
		Owner:   getEnvOrDefault("OWNER_NAME", knowledge.DefaultOwner),
	}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// LogConfig 描述日志配置。
type LogConfig struct {
	Level       string
	Encoding    string
	Development bool
	ServiceName string
}

// Options converts the config into logger options.
func (c LogConfig) Options() utils.LogOptions {
	return utils.LogOptions{
		Level:       c.Level,
		Encoding:    c.Encoding,
		Development: c.Development,
		ServiceName: c.ServiceName,
	}
}

// ChatConfig bounds the simulated typing delay of the chat widget.
type ChatConfig struct {
	MinReplyDelay time.Duration
	MaxReplyDelay time.Duration
	Welcome       string
}

// ContactConfig 描述联系表单配置。
type ContactConfig struct {
	SubmitDelay time.Duration
	// DBPath selects the SQLite inbox; empty keeps submissions in memory.
	DBPath string
	// AdminToken guards the submissions listing; empty disables the listing.
	AdminToken string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	origins := splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"))

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port, AllowedOrigins: origins}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, AllowedOrigins: origins}, nil
}

func loadLogConfig() (LogConfig, error) {
	development, err := parseBoolEnv("LOG_DEVELOPMENT", false)
	if err != nil {
		return LogConfig{}, err
	}

	return LogConfig{
		Level:       strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		Encoding:    strings.ToLower(getEnvOrDefault("LOG_ENCODING", "console")),
		Development: development,
		ServiceName: getEnvOrDefault("SERVICE_NAME", "folio"),
	}, nil
}

func loadChatConfig() (ChatConfig, error) {
	minDelay, err := parseDurationEnv("CHAT_REPLY_MIN_DELAY", time.Second)
	if err != nil {
		return ChatConfig{}, err
	}
	maxDelay, err := parseDurationEnv("CHAT_REPLY_MAX_DELAY", 2*time.Second)
	if err != nil {
		return ChatConfig{}, err
	}
	if maxDelay < minDelay {
		return ChatConfig{}, fmt.Errorf("CHAT_REPLY_MAX_DELAY (%s) is below CHAT_REPLY_MIN_DELAY (%s)", maxDelay, minDelay)
	}

	return ChatConfig{
		MinReplyDelay: minDelay,
		MaxReplyDelay: maxDelay,
		Welcome:       strings.TrimSpace(os.Getenv("CHAT_WELCOME")),
	}, nil
}

func loadContactConfig() (ContactConfig, error) {
	delay, err := parseDurationEnv("CONTACT_SUBMIT_DELAY", 2*time.Second)
	if err != nil {
		return ContactConfig{}, err
	}

	return ContactConfig{
		SubmitDelay: delay,
		DBPath:      strings.TrimSpace(os.Getenv("CONTACT_DB_PATH")),
		AdminToken:  strings.TrimSpace(os.Getenv("ADMIN_TOKEN")),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if val < 0 {
		return 0, fmt.Errorf("invalid %s value %q: must not be negative", key, raw)
	}
	return val, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
