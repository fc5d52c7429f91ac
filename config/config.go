package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"quiz-client/game"
	qnet "quiz-client/quiz_net"
)

const EnvPrefix = "QUIZ"

type Config struct {
	Server   ServerConfig    `mapstructure:"server"`
	Client   ClientConfig    `mapstructure:"client"`
	Log      LogConfig       `mapstructure:"log"`
	Protocol game.Vocabulary `mapstructure:"protocol"`
}

type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	KeepAlive      time.Duration `mapstructure:"keepalive"`
	ReadBuffer     int           `mapstructure:"read_buffer"`
}

type ClientConfig struct {
	DispatchInterval  time.Duration `mapstructure:"dispatch_interval"`
	TimerInterval     time.Duration `mapstructure:"timer_interval"`
	CarryPartialLines bool          `mapstructure:"carry_partial_lines"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads .env, then the YAML file at path (or config.yaml in the usual
// places when path is empty), then QUIZ_* environment variables.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "quiz-client"))
		}
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	net := qnet.DefaultConfig()
	v.SetDefault("server.host", net.Host)
	v.SetDefault("server.port", net.Port)
	v.SetDefault("server.connect_timeout", net.ConnectTimeout)
	v.SetDefault("server.keepalive", net.KeepAlive)
	v.SetDefault("server.read_buffer", net.ReadBufferSize)

	v.SetDefault("client.dispatch_interval", game.DefaultDispatchInterval)
	v.SetDefault("client.timer_interval", game.DefaultTimerInterval)
	v.SetDefault("client.carry_partial_lines", false)

	v.SetDefault("log.level", "info")

	vocab := game.DefaultVocabulary()
	v.SetDefault("protocol.new_game", vocab.NewGame)
	v.SetDefault("protocol.nickname_request", vocab.NicknameRequest)
	v.SetDefault("protocol.nickname_taken", vocab.NicknameTaken)
	v.SetDefault("protocol.question", vocab.Question)
	v.SetDefault("protocol.time_left", vocab.TimeLeft)
	v.SetDefault("protocol.round_closed", vocab.RoundClosed)
	v.SetDefault("protocol.round_open", vocab.RoundOpen)
	v.SetDefault("protocol.ranking", vocab.Ranking)
	v.SetDefault("protocol.login_ok", vocab.LoginOK)
}

func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be within 1..65535, got %d", c.Server.Port)
	}
	if c.Server.ConnectTimeout <= 0 {
		return fmt.Errorf("server.connect_timeout must be positive")
	}
	if c.Server.KeepAlive <= 0 {
		return fmt.Errorf("server.keepalive must be positive")
	}
	if c.Server.ReadBuffer <= 0 {
		return fmt.Errorf("server.read_buffer must be positive")
	}
	if c.Client.DispatchInterval <= 0 {
		return fmt.Errorf("client.dispatch_interval must be positive")
	}
	if c.Client.TimerInterval <= 0 {
		return fmt.Errorf("client.timer_interval must be positive")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

func (c *Config) Net() qnet.Config {
	return qnet.Config{
		Host:           c.Server.Host,
		Port:           c.Server.Port,
		ConnectTimeout: c.Server.ConnectTimeout,
		KeepAlive:      c.Server.KeepAlive,
		ReadBufferSize: c.Server.ReadBuffer,
	}
}

func (c *Config) Loop() game.LoopConfig {
	return game.LoopConfig{
		DispatchInterval:  c.Client.DispatchInterval,
		TimerInterval:     c.Client.TimerInterval,
		CarryPartialLines: c.Client.CarryPartialLines,
		Vocabulary:        c.Protocol,
	}
}
