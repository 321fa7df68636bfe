package env

import (
	"os"
)

// EnvName example: staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: hofa-cli
func AppName() string {
	return os.Getenv("APP_NAME")
}
