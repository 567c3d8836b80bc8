package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	BoardRows       int
	BoardCols       int
	WinLength       int
	GamesPerPairing int
	Personalities   []string
	DBPath          string
	Seed            int64
}

func LoadConfig() *Config {
	personalities := []string{}
	if csv := GetEnv("PERSONALITIES", ""); csv != "" {
		for _, name := range strings.Split(csv, ",") {
			trimmed := strings.TrimSpace(name)
			if trimmed != "" {
				personalities = append(personalities, trimmed)
			}
		}
	}

	return &Config{
		BoardRows:       GetEnvAsInt("BOARD_ROWS", 6),
		BoardCols:       GetEnvAsInt("BOARD_COLS", 7),
		WinLength:       GetEnvAsInt("WIN_LENGTH", 4),
		GamesPerPairing: GetEnvAsInt("GAMES_PER_PAIRING", 50),
		Personalities:   personalities,
		DBPath:          GetEnv("DB_PATH", "data/arena.db"),
		Seed:            GetEnvAsInt64("RNG_SEED", 0),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
