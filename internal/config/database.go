package config

import (
	"time"
)

type DatabaseConfig struct {
	URI            string
	Database       string
	MaxPoolSize    int
	MinPoolSize    int
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URI:            envString("MONGODB_URI", "mongodb://localhost:27017"),
		Database:       envString("MONGODB_DATABASE", "rentwheels"),
		MaxPoolSize:    envInt("MONGODB_MAX_POOL_SIZE", 100),
		MinPoolSize:    envInt("MONGODB_MIN_POOL_SIZE", 5),
		ConnectTimeout: envDuration("MONGODB_CONNECT_TIMEOUT", 5*time.Second),
		SocketTimeout:  envDuration("MONGODB_SOCKET_TIMEOUT", 45*time.Second),
	}
}
