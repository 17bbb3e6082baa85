package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

// Config holds all configuration from environment variables.
type Config struct {
	Token   string `envconfig:"BOT_TOKEN" required:"true" validate:"required"`
	APIKey  string `envconfig:"GROQ_API_KEY" required:"true" validate:"required"`
	BaseURL string `envconfig:"GROQ_BASE_URL" default:"https://api.groq.com/openai/v1" validate:"required,url"`
	Model   string `envconfig:"GROQ_MODEL" default:"llama3-8b-8192" validate:"required"`

	// Optional Postgres connection string for the activity journal.
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`

	// Path to config.toml file
	ConfigFile string `envconfig:"CONFIG_FILE" default:"config.toml"`

	// Reply texts loaded from config.toml
	Messages Messages
}

// Messages holds the user-visible reply texts.
type Messages struct {
	Greeting     string `toml:"greeting"`
	Help         string `toml:"help"`
	Mabar        string `toml:"mabar"`
	About        string `toml:"about"`
	AIPrompt     string `toml:"ai_prompt"`
	AIFailure    string `toml:"ai_failure"`
	ReplyFailure string `toml:"reply_failure"`
}

// FileConfig represents the structure of config.toml.
type FileConfig struct {
	Messages Messages `toml:"messages"`
}

// NamePlaceholder is replaced with the sender's display name in Greeting.
const NamePlaceholder = "{name}"

// DefaultMessages provides fallback texts if config.toml is not found.
var DefaultMessages = Messages{
	Greeting: "Halo " + NamePlaceholder + ", bagaimana kabarmu?",
	Help: `Saya adalah bot yang bisa melakukan beberapa tugas sederhana:
- /start: Mulai percakapan dengan bot.
- /hello: Sapa bot dan lihat responsnya.
- /help: Lihat panduan ini.
- /about: Info tentang bot.
- /mabar: Mengajak bermain game (ML, FF, E-Football).
- /aibot: Tanyakan saya sesuatu dan saya akan menjawabnya dengan AI.`,
	Mabar:        "Baik, silahkan invite saya. Ini ID saya: 9398489263.",
	About:        "Saya adalah ucup_bot, dibuat untuk membantu Anda belajar membuat bot Telegram!",
	AIPrompt:     "Silakan tulis pertanyaan Anda untuk AI.",
	AIFailure:    "Maaf, terjadi kesalahan saat memproses permintaan ke Groq AI.",
	ReplyFailure: "Maaf, terjadi kesalahan saat memproses pesanmu.",
}

// Greet renders the greeting for the given display name.
func (m Messages) Greet(name string) string {
	return strings.ReplaceAll(m.Greeting, NamePlaceholder, name)
}

// withDefaults fills empty texts from DefaultMessages.
func (m Messages) withDefaults() Messages {
	fill := func(dst *string, def string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = def
		}
	}
	fill(&m.Greeting, DefaultMessages.Greeting)
	fill(&m.Help, DefaultMessages.Help)
	fill(&m.Mabar, DefaultMessages.Mabar)
	fill(&m.About, DefaultMessages.About)
	fill(&m.AIPrompt, DefaultMessages.AIPrompt)
	fill(&m.AIFailure, DefaultMessages.AIFailure)
	fill(&m.ReplyFailure, DefaultMessages.ReplyFailure)
	return m
}

// LoadEnv loads the configuration from environment variables.
func (c Config) LoadEnv() (Config, error) {
	cfg := c

	if err := envconfig.Process("", &cfg); err != nil {
		return c, err
	}

	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)

	return cfg, nil
}

// LoadFile loads reply texts from config.toml file.
func (c *Config) LoadFile() error {
	// Try to find config file
	configPath := c.ConfigFile
	if !filepath.IsAbs(configPath) {
		// Try current directory first
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			// Try executable directory
			execPath, err := os.Executable()
			if err == nil {
				configPath = filepath.Join(filepath.Dir(execPath), c.ConfigFile)
			}
		}
	}

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		c.Messages = DefaultMessages
		return nil
	}

	var fileConfig FileConfig
	if _, err := toml.DecodeFile(configPath, &fileConfig); err != nil {
		return fmt.Errorf("failed to decode %s: %w", configPath, err)
	}

	c.Messages = fileConfig.Messages.withDefaults()

	return nil
}

// Validate reports every missing or malformed setting by its variable name.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("envconfig"); name != "" {
			return name
		}
		return f.Name
	})

	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s must be set and non-empty", fe.Field()))
		case "url":
			problems = append(problems, fmt.Sprintf("%s must be a valid URL, got %q", fe.Field(), fe.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag()))
		}
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func NewConfig() (*Config, error) {
	// A missing .env is fine, the environment may already be populated.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	loadedCfg, err := cfg.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("pastikan BOT_TOKEN dan GROQ_API_KEY sudah disetel: %w", err)
	}

	if err := loadedCfg.Validate(); err != nil {
		return nil, err
	}

	// Load reply texts from config.toml
	if err := loadedCfg.LoadFile(); err != nil {
		return nil, err
	}

	return &loadedCfg, nil
}

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(
			NewConfig,
		),
	)
}
