package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SimConfig 模拟配置
type SimConfig struct {
	Length int   `yaml:"length" json:"length"` // 采样点数（>= 2，0 取默认 400）
	Seed   int64 `yaml:"seed" json:"seed"`     // 随机种子（0 表示用时间种子，结果不可复现）
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level" json:"level"`             // 日志级别: debug, info, warn, error
	File       string `yaml:"file" json:"file"`               // 日志文件路径（可选，为空则只输出到控制台）
	MaxSize    int    `yaml:"max_size" json:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `yaml:"max_backups" json:"max_backups"` // 保留的旧日志文件数量
	MaxAge     int    `yaml:"max_age" json:"max_age"`         // 保留旧日志文件的天数
	Compress   bool   `yaml:"compress" json:"compress"`       // 是否压缩旧日志文件
}

// Config 应用配置
type Config struct {
	Sim SimConfig `yaml:"sim" json:"sim"`
	Log LogConfig `yaml:"log" json:"log"`
}

// Default 默认配置。
func Default() Config {
	return Config{
		Sim: SimConfig{
			Length: 400,
			Seed:   0,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   true,
		},
	}
}

// Load 从文件加载配置（按扩展名支持 .yaml/.yml/.json），再叠加环境变量覆盖。
// path 为空时只用默认值 + 环境变量。
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "读取配置文件失败: %s", path)
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			if err := json.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrapf(err, "解析 JSON 配置失败: %s", path)
			}
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrapf(err, "解析 YAML 配置失败: %s", path)
			}
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate 校验配置。
func (c Config) Validate() error {
	if c.Sim.Length != 0 && c.Sim.Length < 2 {
		return errors.Errorf("sim.length 必须 >= 2: got %d", c.Sim.Length)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.Errorf("未知日志级别: %s", c.Log.Level)
	}
	return nil
}

// applyEnvOverrides 环境变量覆盖（MARKETSIM_* 前缀）。
func applyEnvOverrides(cfg *Config) {
	if v := parseIntEnv("MARKETSIM_LENGTH", 0); v != 0 {
		cfg.Sim.Length = v
	}
	if v := parseInt64Env("MARKETSIM_SEED", 0); v != 0 {
		cfg.Sim.Seed = v
	}
	if v := os.Getenv("MARKETSIM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("MARKETSIM_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

func parseIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func parseInt64Env(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
