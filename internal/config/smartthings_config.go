package config

import "os"

type SmartThings struct{}

var _ SmartThingsConfig = SmartThings{}

func (SmartThings) GetClientID() string {
	return os.Getenv(clientIDVar)
}

func (SmartThings) GetClientSecret() string {
	return os.Getenv(clientSecretVar)
}

// GetAppID returns the platform-assigned identifier of this app's
// registration (not the installed-app id, which is per installation).
func (SmartThings) GetAppID() string {
	return os.Getenv(appIDVar)
}

func (s SmartThings) GetRedirectURI() string {
	return EnvVars{}.GetBaseURL() + "/oauth/callback"
}
