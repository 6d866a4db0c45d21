package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/nickdiaz444/pickleball-open-play4/internal/rotation"
)

// 默认值，Load 补缺省与 Default 共用
const (
	defaultMaxPlayers       = 20
	defaultCourts           = 3
	defaultGamesPerRotation = 2
	defaultAutoFillInterval = 3
)

// Config 开放场次工具配置
type Config struct {
	Session SessionConfig `yaml:"session"`
	UI      UIConfig      `yaml:"ui"`
}

// SessionConfig 场次配置
type SessionConfig struct {
	MaxPlayers       int  `yaml:"max_players"`        // 本场人数上限（1-20）
	Courts           int  `yaml:"courts"`             // 场地数（1-3）
	GamesPerRotation int  `yaml:"games_per_rotation"` // 胜方连打局数上限
	AutoFill         bool `yaml:"auto_fill"`          // 启动时开启自动补位
}

// UIConfig 界面配置
type UIConfig struct {
	Sound            *bool `yaml:"sound"`              // 音效开关（缺省开启）
	AutoFillInterval int   `yaml:"auto_fill_interval"` // 自动补位轮询间隔（秒）
}

// Settings 转换为引擎设置，范围校验由 rotation.NewSession 负责
func (c *SessionConfig) Settings() rotation.Settings {
	return rotation.Settings{
		MaxPlayers:       c.MaxPlayers,
		Courts:           c.Courts,
		GamesPerRotation: c.GamesPerRotation,
		AutoFill:         c.AutoFill,
	}
}

// SoundEnabled 音效是否开启
func (c *UIConfig) SoundEnabled() bool {
	return c.Sound == nil || *c.Sound
}

// AutoFillIntervalDuration 返回自动补位轮询间隔
func (c *UIConfig) AutoFillIntervalDuration() time.Duration {
	return time.Duration(c.AutoFillInterval) * time.Second
}

// DefaultPath 默认配置文件路径
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "openplay", "config.yaml")
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Session.MaxPlayers == 0 {
		cfg.Session.MaxPlayers = defaultMaxPlayers
	}
	if cfg.Session.Courts == 0 {
		cfg.Session.Courts = defaultCourts
	}
	if cfg.Session.GamesPerRotation == 0 {
		cfg.Session.GamesPerRotation = defaultGamesPerRotation
	}
	if cfg.UI.AutoFillInterval == 0 {
		cfg.UI.AutoFillInterval = defaultAutoFillInterval
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			MaxPlayers:       defaultMaxPlayers,
			Courts:           defaultCourts,
			GamesPerRotation: defaultGamesPerRotation,
		},
		UI: UIConfig{
			AutoFillInterval: defaultAutoFillInterval,
		},
	}
}
