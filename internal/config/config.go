package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"github.com/joho/godotenv" // godotenv loads a .env file during local development
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The signing secret and the CORS allow-list are
// loaded here once at startup and handed to the components that need them;
// nothing else in the process reads the environment after Load returns.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host address
	DBPort         string // database port number
	DBName         string // database name
	JWTSecret      string // secret used to sign access tokens
	AccessTTLMin   int    // access token time-to-live in minutes
	BcryptCost     int    // bcrypt cost for password hashing
	FrontendURL    string // deployed frontend origin added to the CORS allow-list (optional)
	MigrateOnStart bool   // run pending schema migrations before serving
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  In the "dev"
// environment a .env file is loaded first so local runs need no exports.
func Load() Config {
	if os.Getenv("APP_ENV") == "dev" {
		_ = godotenv.Load()
	}
	return Config{
		Env:            must("APP_ENV"),                 // environment (dev/test/prod)
		Port:           must("APP_PORT"),                // port to bind the HTTP server
		DBUser:         must("DB_USER"),                 // database user
		DBPass:         os.Getenv("DB_PASS"),            // database password (empty allowed)
		DBHost:         must("DB_HOST"),                 // database host
		DBPort:         must("DB_PORT"),                 // database port
		DBName:         must("DB_NAME"),                 // database name
		JWTSecret:      must("JWT_SECRET"),              // secret used for signing JWTs
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"), // TTL for access tokens in minutes
		BcryptCost:     mustInt("BCRYPT_COST"),          // bcrypt cost factor
		FrontendURL:    os.Getenv("FRONTEND_URL"),       // deployed frontend origin (empty allowed)
		MigrateOnStart: envBool("MIGRATE_ON_START", false),
	}
}

// AllowedOrigins returns the explicit CORS allow-list: the local development
// origins plus the deployed frontend when FRONTEND_URL is set.  Credentialed
// cross-origin requests must echo one of these, never a wildcard.
func (c Config) AllowedOrigins() []string {
	origins := []string{
		"http://localhost:8100",
		"http://127.0.0.1:8100",
	}
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return origins
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
