package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadJWTReadsEnvironmentAfterDotenv(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-dotenv")
	LoadJWT()
	assert.Equal(t, []byte("from-dotenv"), JWTSecret)

	t.Setenv("JWT_SECRET", "")
	LoadJWT()
	assert.Equal(t, []byte(jwtSecretFallback), JWTSecret)
}
