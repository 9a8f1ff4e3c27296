package config

import "fmt"

type Config interface {
	EnvConfig
	SmartThingsConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
}

type SmartThingsConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetAppID() string
	GetRedirectURI() string
}

type mainConfig struct {
	EnvVars
	SmartThings
}

func New() Config {
	return mainConfig{}
}

// Validate checks that the OAuth client credentials are present. A missing
// client id or secret makes every authenticated request fail, so startup
// must not proceed without them.
func Validate(c Config) error {
	if c.GetClientID() == "" {
		return fmt.Errorf("[config Validate] %s is not set", clientIDVar)
	}
	if c.GetClientSecret() == "" {
		return fmt.Errorf("[config Validate] %s is not set", clientSecretVar)
	}
	return nil
}
