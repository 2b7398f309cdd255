package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port                int           `yaml:"port"`
	LogLevel            string        `yaml:"log_level"`
	LogJSON             bool          `yaml:"log_json"`
	FrontPageTopicLimit int           `yaml:"front_page_topic_limit"` // max topics whose recent posts appear on the browse page
	FrontPagePostLimit  int           `yaml:"front_page_post_limit"`  // recent posts fetched across those topics
	JwtTTL              time.Duration `yaml:"jwt_ttl"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func (c *Config) validate() {
	if c.Public.FrontPageTopicLimit <= 0 {
		panic("front_page_topic_limit must be set")
	}
	if c.Public.FrontPagePostLimit <= 0 {
		panic("front_page_post_limit must be set")
	}
	if c.Private.JwtKey == "" {
		panic("jwt_key must be set")
	}
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic(fmt.Sprintf("can't read config file: %v", err))
	}

	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic(fmt.Sprintf("can't unmarshal config file: %v", err))
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.validate()
	return cfg
}
