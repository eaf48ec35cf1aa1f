package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Role names shared across services. Each role carries its own JWT secrets
// and password pepper so a leaked candidate secret cannot mint admin tokens.
const (
	RoleAdmin     = "admin"
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

// RoleSecrets holds the per-role signing keys for the three token types plus
// the password pepper.
type RoleSecrets struct {
	AccessKey     string
	ActivationKey string
	PasswordKey   string
	Pepper        string
}

type Config struct {
	DBUrl string

	// Per-service listen ports
	AdminPort     string
	AuthPort      string
	CandidatePort string
	RecruiterPort string

	// Per-role auth secrets
	Roles map[string]RoleSecrets

	// Frontend base URLs used in activation / password-reset links and
	// middleware redirects
	AdminURL     string
	CandidateURL string
	RecruiterURL string
	// Public base URL of the authentication service itself (activation links
	// point back at it)
	AuthAPIURL string

	// SMTP configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	ProductName   string

	// Redis (rate limiting); empty URL falls back to the in-memory limiter
	RedisURL      string
	RedisPassword string

	// CORS
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		DBUrl: getEnv("DATABASE_URL", ""),

		AdminPort:     getEnv("ADMIN_PORT", "8081"),
		AuthPort:      getEnv("AUTH_PORT", "8080"),
		CandidatePort: getEnv("CANDIDATE_PORT", "8082"),
		RecruiterPort: getEnv("RECRUITER_PORT", "8083"),

		Roles: map[string]RoleSecrets{
			RoleAdmin:     loadRoleSecrets("ADMIN"),
			RoleCandidate: loadRoleSecrets("CANDIDATE"),
			RoleRecruiter: loadRoleSecrets("RECRUITER"),
		},

		// Trailing slashes are trimmed so link building never produces
		// a double slash
		AdminURL:     strings.TrimRight(getEnv("ADMIN_URL", "http://localhost:3001"), "/"),
		CandidateURL: strings.TrimRight(getEnv("CANDIDATE_URL", "http://localhost:3002"), "/"),
		RecruiterURL: strings.TrimRight(getEnv("RECRUITER_URL", "http://localhost:3003"), "/"),
		AuthAPIURL:   strings.TrimRight(getEnv("AUTH_API_URL", "http://localhost:8080"), "/"),

		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@jobfinder.local"),
		ProductName:   getEnv("PRODUCT_NAME", "Job Finder"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	cfg.warnMissingSecrets()

	return cfg, nil
}

// FrontendURL returns the frontend base URL for a role, falling back to the
// candidate frontend for anything unrecognized.
func (c *Config) FrontendURL(role string) string {
	switch role {
	case RoleAdmin:
		return c.AdminURL
	case RoleRecruiter:
		return c.RecruiterURL
	default:
		return c.CandidateURL
	}
}

func loadRoleSecrets(prefix string) RoleSecrets {
	return RoleSecrets{
		AccessKey:     getEnv(prefix+"_ACCESS_KEY", ""),
		ActivationKey: getEnv(prefix+"_ACTIVATION_KEY", ""),
		PasswordKey:   getEnv(prefix+"_PASSWORD_KEY", ""),
		Pepper:        getEnv(prefix+"_PEPPER", ""),
	}
}

func (c *Config) warnMissingSecrets() {
	for role, secrets := range c.Roles {
		if secrets.AccessKey == "" || secrets.ActivationKey == "" || secrets.PasswordKey == "" {
			log.Printf("WARNING: incomplete JWT secrets for role %q", role)
		}
		if secrets.Pepper == "" {
			log.Printf("WARNING: missing password pepper for role %q", role)
		}
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
