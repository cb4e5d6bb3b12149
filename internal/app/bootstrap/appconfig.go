// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, timeouts); AppConfig is everything specific to the academy:
// database connections, the Redis cart backend, session cookies, and
// the Google sign-in credentials.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in the driver pool
	MongoMinPoolSize uint64 // Min connections kept warm

	// Redis (shopping cart) configuration
	RedisAddr     string // host:port of the Redis server
	RedisPassword string // blank when Redis runs without auth
	RedisDB       int    // logical Redis database number

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: academy-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Google OAuth configuration
	GoogleClientID     string
	GoogleClientSecret string

	// BaseURL is used to build absolute URLs, e.g. the OAuth callback.
	BaseURL string // e.g., "https://academy.example.com" or "http://localhost:3000"

	// DefaultLang is the language used when neither the lang cookie nor
	// Accept-Language yields a supported one ("en" or "de").
	DefaultLang string
}
