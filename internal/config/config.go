package config

import "os"

// Config carries every runtime setting the server needs. It is built once at
// startup and handed to the components that use it; nothing reads the
// environment after Load returns.
type Config struct {
	Port string

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLPort     string
	MySQLDatabase string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	// JWTSecret signs session tokens; reset tokens are signed with this
	// secret combined with the user's current password hash.
	JWTSecret string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string

	// AppURL is the public base URL embedded in password-reset links.
	AppURL string

	// PuzzleAPIURL is the external banana-puzzle provider endpoint.
	PuzzleAPIURL string

	// StaticDir, when set, is served as the frontend bundle.
	StaticDir string
}

// Load reads the configuration from environment variables, applying the same
// defaults the development docker-compose setup uses.
func Load() Config {
	return Config{
		Port: getEnv("PORT", "3000"),

		MySQLUser:     getEnv("MYSQL_USER", "root"),
		MySQLPassword: getEnv("MYSQL_PASSWORD", ""),
		MySQLHost:     getEnv("MYSQL_HOST", "localhost"),
		MySQLPort:     getEnv("MYSQL_PORT", "3306"),
		MySQLDatabase: getEnv("MYSQL_DATABASE", "junglebanana"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     getEnv("EMAIL_USER", ""),
		SMTPPassword: getEnv("EMAIL_PASS", ""),

		AppURL:       getEnv("APP_URL", "http://localhost:3000"),
		PuzzleAPIURL: getEnv("PUZZLE_API_URL", "https://marcconrad.com/uob/banana/api.php?out=json"),
		StaticDir:    getEnv("STATIC_DIR", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
