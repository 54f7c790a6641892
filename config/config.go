package config

import (
	_ "embed"
	"fmt"
	"time"

	"tradetalk/analyze"
	"tradetalk/db"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var configByte []byte

type Config struct {
	Log string `yaml:"log"`
	App struct {
		Port int `yaml:"port"`
	} `yaml:"app"`
	Db struct {
		User     string `yaml:"user"`
		Password string `yaml:"pwd"`
		IP       string `yaml:"ip"`
		Port     string `yaml:"port"`
		Scheme   string `yaml:"scheme"`
	} `yaml:"db"`
	Redis struct {
		Addr       string `yaml:"addr"`
		Password   string `yaml:"password"`
		DB         int    `yaml:"db"`
		TTLSeconds int    `yaml:"ttl-seconds"`
	} `yaml:"redis"`
	AI struct {
		URL   string `yaml:"url"`
		Key   string `yaml:"key"`
		Model string `yaml:"model"`
	} `yaml:"ai"`
}

func NewConfig() (*Config, error) {

	var ConfigInfo Config = Config{}

	err := yaml.Unmarshal(configByte, &ConfigInfo)
	if err != nil {
		return nil, err
	}

	return &ConfigInfo, nil
}

func (c Config) LogLevel() (zerolog.Level, error) {

	level, err := zerolog.ParseLevel(c.Log)
	if err != nil {
		return zerolog.InfoLevel, err
	}

	return level, nil
}

func (c Config) Dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", c.Db.User, c.Db.Password, c.Db.IP, c.Db.Port, c.Db.Scheme)
}

func (c Config) CacheConfig() *db.CacheConfig {
	return &db.CacheConfig{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
		TTL:      time.Duration(c.Redis.TTLSeconds) * time.Second,
	}
}

func (c Config) AnalyzerConfig() analyze.Config {
	return analyze.Config{
		BaseURL: c.AI.URL,
		APIKey:  c.AI.Key,
		Model:   c.AI.Model,
	}
}
