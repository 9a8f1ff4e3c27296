package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	portEnvVar      = "PORT"
	appNameVar      = "APP_NAME"
	baseURLVar      = "URL"
	serverURLVar    = "SERVER_URL"
	appIDVar        = "APP_ID"
	clientIDVar     = "CLIENT_ID"
	clientSecretVar = "CLIENT_SECRET"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "SmartThings Scenes")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

// GetBaseURL returns the externally reachable base URL of this service
// (e.g., "https://myapp.example.com"). URL takes precedence over SERVER_URL.
func (EnvVars) GetBaseURL() string {
	if url := os.Getenv(baseURLVar); url != "" {
		return strings.TrimSuffix(url, "/")
	}
	return strings.TrimSuffix(GetEnv(serverURLVar, "http://localhost:8080"), "/")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
