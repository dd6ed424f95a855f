package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"pricematch-service/internal/match/model"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string
	CachePath    string // словарь ключевых слов (JSON)

	Matching model.Options
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "256"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")

	opts := model.DefaultOptions()
	opts.MinPrice = getint("MIN_PRICE", opts.MinPrice)
	opts.MaxPrice = getint("MAX_PRICE", opts.MaxPrice)
	opts.MaxMatches = getint("MAX_MATCHES", opts.MaxMatches)
	opts.Threshold = getfloat("MATCH_THRESHOLD", opts.Threshold)

	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		MaxUploadMB:  mb,
		LogFile:      getenv("LOG_FILE", "logs/pricematch-service.log"),
		CachePath:    getenv("DICTIONARY_PATH", "data/dictionaries.json"),
		Matching:     opts,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
