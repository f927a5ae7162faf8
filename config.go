package tasks

import (
	"os"
	"strconv"
)

const (
	// DefaultListenAddr matches the original service port.
	DefaultListenAddr = ":3000"
	// DefaultSigningKey is a development fallback. Override it in any
	// real deployment via TASKS_SIGNING_KEY.
	DefaultSigningKey = "clave_secreta"
	// DefaultTokenExpiration is the token validity window in hours.
	DefaultTokenExpiration = 1
	DefaultIssuer          = "go-tasks"
	DefaultContextKey      = "user"
	DefaultAuthScheme      = "Bearer"
	DefaultUsersFile       = "usuarios.json"
	DefaultTasksFile       = "tareas.json"
)

// AppConfig is the process-wide configuration, fixed at startup and
// passed explicitly to the components that need it. Nothing reads
// ambient globals after construction.
type AppConfig struct {
	ListenAddr      string
	SigningKey      string
	TokenExpiration int
	Issuer          string
	ContextKey      string
	AuthScheme      string
	UsersFile       string
	TasksFile       string
}

var _ Config = (*AppConfig)(nil)

// NewConfig returns a config populated with development defaults.
func NewConfig() *AppConfig {
	return &AppConfig{
		ListenAddr:      DefaultListenAddr,
		SigningKey:      DefaultSigningKey,
		TokenExpiration: DefaultTokenExpiration,
		Issuer:          DefaultIssuer,
		ContextKey:      DefaultContextKey,
		AuthScheme:      DefaultAuthScheme,
		UsersFile:       DefaultUsersFile,
		TasksFile:       DefaultTasksFile,
	}
}

// ConfigFromEnv builds a config by applying defaults and then
// overlaying TASKS_* environment variables.
func ConfigFromEnv() *AppConfig {
	cfg := NewConfig()

	cfg.ListenAddr = envString("TASKS_ADDR", cfg.ListenAddr)
	cfg.SigningKey = envString("TASKS_SIGNING_KEY", cfg.SigningKey)
	cfg.TokenExpiration = envInt("TASKS_TOKEN_EXPIRATION", cfg.TokenExpiration)
	cfg.Issuer = envString("TASKS_ISSUER", cfg.Issuer)
	cfg.UsersFile = envString("TASKS_USERS_FILE", cfg.UsersFile)
	cfg.TasksFile = envString("TASKS_DATA_FILE", cfg.TasksFile)

	return cfg
}

func (c *AppConfig) GetSigningKey() string   { return c.SigningKey }
func (c *AppConfig) GetTokenExpiration() int { return c.TokenExpiration }
func (c *AppConfig) GetIssuer() string       { return c.Issuer }
func (c *AppConfig) GetContextKey() string   { return c.ContextKey }
func (c *AppConfig) GetAuthScheme() string   { return c.AuthScheme }

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
