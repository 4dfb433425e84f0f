package config

import "time"

// Signing material for login tokens. The default secret only exists so a
// local checkout runs without a .env; set JWT_SECRET in any real deployment.
var (
	JWTSecret     []byte
	JWTExpiration time.Duration
)

func init() {
	JWTSecret = []byte(EnvOr("JWT_SECRET", "querystack-dev-only-secret"))

	JWTExpiration = 24 * time.Hour
	if raw := EnvOr("JWT_EXPIRATION", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			JWTExpiration = d
		}
	}
}
