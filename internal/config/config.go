package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string

	// Base URL invite links are built from (the web client origin).
	InviteBase string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type YelpAI struct {
	APIKey   string
	Endpoint string
}

type Agent struct {
	ThinkDelay time.Duration
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	YelpAI   YelpAI
	Agent    Agent
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		YelpAI:   *newYelpAI(),
		Agent:    *newAgent(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port:       getenv("HTTP_PORT", "8000"),
		Host:       getenv("HTTP_HOST", "localhost"),
		InviteBase: getenv("INVITE_BASE_URL", "http://localhost:3000/session"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "dining"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newYelpAI() *YelpAI {
	return &YelpAI{
		APIKey:   getenv("YELP_API_KEY", ""),
		Endpoint: getenv("YELP_AI_ENDPOINT", "https://api.yelp.com/ai/chat/v2"),
	}
}

func newAgent() *Agent {
	delay, err := time.ParseDuration(getenv("AGENT_THINK_DELAY", "3s"))
	if err != nil {
		log.Fatalf("%s bad AGENT_THINK_DELAY : %v", logtag, err)
	}
	return &Agent{ThinkDelay: delay}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}
