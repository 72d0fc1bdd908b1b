package config

import "os"

type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	HTTPPort      string
}

func Load() *Config {
	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "formlab"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
