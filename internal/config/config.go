// Package config - параметры запуска: YAML-файл поверх значений по умолчанию,
// затем переменные окружения, затем флаги CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/pkg/dungeon"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска сессии
type Config struct {
	// Seed - зерно генерации. 0 означает "случайное".
	Seed     int64            `yaml:"seed"`
	Map      MapConfig        `yaml:"map"`
	Player   CreatureConfig   `yaml:"player"`
	Monsters []CreatureConfig `yaml:"monsters"`
	Log      LogConfig        `yaml:"log"`
	UI       UIConfig         `yaml:"ui"`
}

type MapConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	MaxRooms    int `yaml:"max_rooms"`
	MinRoomSize int `yaml:"min_room_size"`
	MaxRoomSize int `yaml:"max_room_size"`
	Margin      int `yaml:"margin"`
}

// CreatureConfig - шаблон игрока или монстра
type CreatureConfig struct {
	Name      string `yaml:"name"`
	Glyph     string `yaml:"glyph"` // Один ASCII символ
	Color     string `yaml:"color"` // "#RRGGBB"
	HP        int    `yaml:"hp"`
	Defence   int    `yaml:"defence"`
	Power     int    `yaml:"power"`
	ViewRange int    `yaml:"view_range"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" или текст
	File   string `yaml:"file"`   // Куда писать логи в режиме терминала
}

type UIConfig struct {
	LogLines int `yaml:"log_lines"` // Сколько строк лога показывать под картой
}

// Default создает конфиг по умолчанию
func Default() Config {
	p := dungeon.DefaultParams()
	return Config{
		Seed: 0,
		Map: MapConfig{
			Width:       p.Width,
			Height:      p.Height,
			MaxRooms:    p.MaxRooms,
			MinRoomSize: p.MinRoomSize,
			MaxRoomSize: p.MaxRoomSize,
			Margin:      p.Margin,
		},
		Player: CreatureConfig{
			Name: "Player", Glyph: "@", Color: "#FFFF00",
			HP: 30, Defence: 2, Power: 5, ViewRange: 8,
		},
		Monsters: []CreatureConfig{
			{Name: "Goblin", Glyph: "g", Color: "#FF0000", HP: 16, Defence: 1, Power: 4, ViewRange: 8},
			{Name: "Orc", Glyph: "o", Color: "#FF0000", HP: 16, Defence: 1, Power: 4, ViewRange: 8},
		},
		Log: LogConfig{Level: "info", Format: "text", File: "rogue.log"},
		UI:  UIConfig{LogLines: 5},
	}
}

// Load читает YAML поверх значений по умолчанию. Пустой путь - только умолчания.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv накладывает переменные окружения. getenv подменяется в тестах.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("ROGUE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ROGUE_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := getenv("ROGUE_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	return nil
}

// ResolveSeed заменяет нулевое зерно на случайное и возвращает итоговое.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

// Params переводит секцию карты в параметры генератора
func (m MapConfig) Params() dungeon.Params {
	return dungeon.Params{
		Width:       m.Width,
		Height:      m.Height,
		MaxRooms:    m.MaxRooms,
		MinRoomSize: m.MinRoomSize,
		MaxRoomSize: m.MaxRoomSize,
		Margin:      m.Margin,
	}
}

// ParseGlyph собирает Glyph из символа и цвета "#RRGGBB".
func (cc CreatureConfig) ParseGlyph() (types.Glyph, error) {
	if len(cc.Glyph) != 1 {
		return 0, fmt.Errorf("glyph %q must be a single ASCII character", cc.Glyph)
	}
	hex := strings.TrimPrefix(cc.Color, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("color %q must be #RRGGBB", cc.Color)
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", cc.Color, err)
	}
	return types.MakeGlyph(uint32(rgb), cc.Glyph[0]), nil
}

func (cc CreatureConfig) validate(field string) []error {
	var errs []error
	if cc.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is empty", field))
	}
	if _, err := cc.ParseGlyph(); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", field, err))
	}
	if cc.HP < 1 {
		errs = append(errs, fmt.Errorf("%s.hp must be >= 1, got %d", field, cc.HP))
	}
	if cc.Defence < 0 || cc.Power < 0 {
		errs = append(errs, fmt.Errorf("%s: defence and power must be >= 0", field))
	}
	if cc.ViewRange < 1 {
		errs = append(errs, fmt.Errorf("%s.view_range must be >= 1, got %d", field, cc.ViewRange))
	}
	return errs
}

// Validate возвращает все ошибки конфига разом (errors.Join)
func (c Config) Validate() error {
	var errs []error
	if err := c.Map.Params().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("map: %w", err))
	}
	errs = append(errs, c.Player.validate("player")...)
	if len(c.Monsters) == 0 {
		errs = append(errs, errors.New("monsters: at least one template is required"))
	}
	for i, m := range c.Monsters {
		errs = append(errs, m.validate(fmt.Sprintf("monsters[%d]", i))...)
	}
	if c.UI.LogLines < 0 {
		errs = append(errs, fmt.Errorf("ui.log_lines must be >= 0, got %d", c.UI.LogLines))
	}
	return errors.Join(errs...)
}
