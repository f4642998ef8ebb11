package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Auth    AuthConfig
	HTTP    HTTPConfig
	AI      AIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// StorageConfig configuración del adaptador de persistencia clave-valor.
// Driver "sqlite" (por defecto, archivo local) o "postgres" (DatabaseURL).
type StorageConfig struct {
	Driver      string
	SQLitePath  string // ruta del archivo .db para el driver sqlite
	DatabaseURL string // connection string para el driver postgres
}

// AuthConfig PIN compartido de acceso y parámetros del token de sesión.
type AuthConfig struct {
	AccessPIN     string
	JWTSecret     string
	JWTExpiration int // minutos
	JWTIssuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// AIConfig credenciales del servicio de IA (Anthropic).
// APIKey vacío deshabilita las llamadas: los endpoints devuelven los valores
// de respaldo en lugar de fallar.
type AIConfig struct {
	AnthropicAPIKey string
	AnthropicModel  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORAGE_DRIVER, ACCESS_PIN, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "noorinv-api"),
		},
		Storage: StorageConfig{
			Driver:      getString(v, "STORAGE_DRIVER", "sqlite"),
			SQLitePath:  getString(v, "STORAGE_SQLITE_PATH", "noorinv.db"),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
		},
		Auth: AuthConfig{
			AccessPIN:     getString(v, "ACCESS_PIN", "0000"),
			JWTSecret:     getString(v, "JWT_SECRET", ""),
			JWTExpiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			JWTIssuer:     getString(v, "JWT_ISSUER", "noorinv-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		AI: AIConfig{
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
