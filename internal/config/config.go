package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var Config *ServerConfig

// ServerConfig is a struct that contains configuration values for the server.
type ServerConfig struct {
	// AllowedOrigins is a list of URLs that the server will accept requests from.
	AllowedOrigins []string
	// AdminEmails is a list of email addresses that are granted admin rights on
	// registration, in addition to the first registered user.
	AdminEmails []string
	// SessionCookieName is the name to use for the session cookie.
	SessionCookieName string
	// SessionCookieExpiration is the amount of time a session cookie is valid. Max 5 days.
	SessionCookieExpiration time.Duration
	// FirebaseCredentialsFile is the path to the Firebase service account key.
	FirebaseCredentialsFile string
	// BunnyLibraryID and BunnyAPIKey configure the Bunny Stream video library.
	BunnyLibraryID string
	BunnyAPIKey    string
	// SendgridAPIKey and the certificate sender identity. If the key is empty,
	// certificate emails are disabled and approvals are recorded silently.
	SendgridAPIKey       string
	CertificateFromName  string
	CertificateFromEmail string
	// Port is the port the server should run on.
	Port int
}

func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		AllowedOrigins:          []string{"http://localhost:3000"},
		AdminEmails:             []string{},
		SessionCookieName:       "courseware-session",
		SessionCookieExpiration: time.Hour * 24 * 5,
		FirebaseCredentialsFile: "firebase-config.json",
		CertificateFromName:     "Courseware",
		Port:                    8080,
	}
}

// LoadConfig populates Config from environment variables, falling back to the
// defaults above. A .env file is honored when present.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	cfg := DefaultConfig()

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("ADMIN_EMAILS"); v != "" {
		cfg.AdminEmails = splitAndTrim(v)
	}
	if v := os.Getenv("SESSION_COOKIE_NAME"); v != "" {
		cfg.SessionCookieName = v
	}
	if v := os.Getenv("FIREBASE_CREDENTIALS_FILE"); v != "" {
		cfg.FirebaseCredentialsFile = v
	}
	cfg.BunnyLibraryID = os.Getenv("BUNNY_LIBRARY_ID")
	cfg.BunnyAPIKey = os.Getenv("BUNNY_API_KEY")
	cfg.SendgridAPIKey = os.Getenv("SENDGRID_API_KEY")
	if v := os.Getenv("CERTIFICATE_FROM_NAME"); v != "" {
		cfg.CertificateFromName = v
	}
	cfg.CertificateFromEmail = os.Getenv("CERTIFICATE_FROM_EMAIL")
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			log.Panicf("invalid PORT value %q: %v\n", v, err)
		}
		cfg.Port = port
	}

	Config = cfg
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
