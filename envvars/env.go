package envvars

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	BackendURL    = "BACKEND_URL"
	BackendAPIKey = "BACKEND_API_KEY"
	Environment   = "ENVIRONMENT"
	ListenAddr    = "LISTEN_ADDR"
)

const (
	DevEnv        = "dev"
	ProductionEnv = "production"
)

const defaultListenAddr = "0.0.0.0:8080"

type Env struct {
	BackendURL    string
	BackendAPIKey string
	Environment   string
	ListenAddr    string
}

func GetEvn() Env {
	// A missing .env file is fine; production supplies real env vars.
	_ = godotenv.Load()

	backendURL, ok := os.LookupEnv(BackendURL)
	if !ok {
		log.Fatalf("%s required", BackendURL)
	}
	apiKey, ok := os.LookupEnv(BackendAPIKey)
	if !ok {
		log.Fatalf("%s required", BackendAPIKey)
	}
	environment, ok := os.LookupEnv(Environment)
	if !ok {
		environment = DevEnv
	}
	addr, ok := os.LookupEnv(ListenAddr)
	if !ok {
		addr = defaultListenAddr
	}
	return Env{
		BackendURL:    backendURL,
		BackendAPIKey: apiKey,
		Environment:   environment,
		ListenAddr:    addr,
	}
}

func IsProd(env Env) bool {
	return env.Environment == ProductionEnv
}

func IsDev(env Env) bool {
	return env.Environment == DevEnv
}
