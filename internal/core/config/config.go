package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type CORS struct {
	CMSOrigins    []string // credentialed admin origins
	PublicOrigins []string // public site origins, no credentials
}

type App struct {
	Name string
	Env  string // "production" hides error details and hardens cookies
	HTTP HTTP
	CORS CORS
}

type Log struct {
	Level string
	JSON  bool
	// File enables rotated file output alongside stdout when non-empty.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type JWT struct {
	Secret       string
	Issuer       string
	TokenTTLHour int
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Uploads struct {
	Root string
}

type Scheduler struct {
	CronExpr string // publish-promotion schedule, default every 5 minutes
}

type Config struct {
	App       App
	Log       Log
	JWT       JWT
	DB        DB
	Redis     Redis `mapstructure:"redis"`
	Uploads   Uploads
	Scheduler Scheduler
}

func (c *Config) Production() bool { return c.App.Env == "production" }

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("log.maxsizemb", 100)
	v.SetDefault("log.maxbackups", 7)
	v.SetDefault("log.maxagedays", 30)
	v.SetDefault("jwt.tokenttlhour", 24)
	v.SetDefault("db.automigrate", true)
	v.SetDefault("uploads.root", "./uploads")
	v.SetDefault("scheduler.cronexpr", "*/5 * * * *")

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}
