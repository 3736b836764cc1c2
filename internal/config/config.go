// Package config предоставялет структуры и функцию для парсинга и загрузки конфига.
//
// Конфиг читается из переменных окружения. Если задан CONFIG_PATH,
// сначала читается YAML-файл, а переменные окружения переопределяют его значения.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Драйверы хранилища.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config общая структура для хранения настроек
type Config struct {
	Env            string `yaml:"env" env:"ENV" env-default:"local"`
	CustomerCare   string `yaml:"customer_care" env:"POCHI_NUMBER" env-default:"0758170835"`
	DesignerPhones string `yaml:"designer_phones" env:"DESIGNER_PHONES"`
	HTTPServer     `yaml:"http_server"`
	Storage        `yaml:"storage"`
	Redis          `yaml:"redis"`
	RabbitMQ       `yaml:"rabbitmq"`
	RateLimit      `yaml:"rate_limit"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	Port        string        `yaml:"port" env:"PORT" env-default:"8080"`
	TimeoutHTTP time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Storage структура для настройки подключения к хранилищу
type Storage struct {
	Driver       string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	SQLiteFile   string `yaml:"sqlite_file" env:"SQLITE_FILE" env-default:"./data/sakaclient.db"`
	DatabaseURL  string `yaml:"database_url" env:"DATABASE_URL"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
}

// Redis структура для настройки кеша пользователей. Пустой адрес отключает кеш.
type Redis struct {
	RedisAddress  string        `yaml:"addr" env:"REDIS_ADDR"`
	RedisPassword string        `yaml:"password" env:"REDIS_PASSWORD"`
	RedisDB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	RedisTTL      time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// RabbitMQ структура для настройки публикации событий. Пустой URL отключает публикацию.
type RabbitMQ struct {
	AMQPURL      string `yaml:"url" env:"AMQP_URL"`
	AMQPExchange string `yaml:"exchange" env:"AMQP_EXCHANGE" env-default:"sakaclient.events"`
}

// RateLimit структура для настройки ограничителя запросов. RPS = 0 отключает его.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"0"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"20"`
}

// Load читает конфиг и проверяет его.
func Load() (*Config, error) {
	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("file: %s - does not exist", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad функция для загрузки конфига, завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.SQLiteFile) == "" {
			return errors.New("SQLITE_FILE is empty")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required for postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}
	return nil
}

// Address возвращает адрес для http.Server.
func (c *Config) Address() string {
	return ":" + c.Port
}

// Designers разбирает DESIGNER_PHONES в множество номеров.
func (c *Config) Designers() map[string]struct{} {
	set := make(map[string]struct{})
	for _, phone := range strings.Split(c.DesignerPhones, ",") {
		phone = strings.TrimSpace(phone)
		if phone != "" {
			set[phone] = struct{}{}
		}
	}
	return set
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"CustomerCare: %s\n"+
			"DesignerPhones: %d\n"+
			"HTTPServer:\n"+
			"  Port: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Storage:\n"+
			"  Driver: %s\n"+
			"  SQLiteFile: %s\n"+
			"  MaxOpenConns: %d\n"+
			"Redis:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"  TTL: %s\n"+
			"RabbitMQ:\n"+
			"  Enabled: %t\n"+
			"  Exchange: %s\n"+
			"RateLimit:\n"+
			"  RPS: %g\n"+
			"  Burst: %d\n",
		c.Env,
		c.CustomerCare,
		len(c.Designers()),
		c.Port,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.Driver,
		c.SQLiteFile,
		c.MaxOpenConns,
		c.RedisAddress,
		c.RedisDB,
		c.RedisTTL,
		c.AMQPURL != "",
		c.AMQPExchange,
		c.RPS,
		c.Burst,
	)
}
