package config

import "time"

var (
	JWTSecret     = loadSecret()
	JWTExpiration = 24 * time.Hour
)

// Fallback keeps local development and the test suites working without an
// environment file. Never deploy with it.
const jwtSecretFallback = "title-review-dev-secret"

func loadSecret() []byte {
	return []byte(getEnv("JWT_SECRET", jwtSecretFallback))
}

// LoadJWT re-reads the signing secret from the environment. Call it after the
// .env file has been loaded, otherwise a secret supplied only through .env is
// never seen.
func LoadJWT() {
	JWTSecret = loadSecret()
}
