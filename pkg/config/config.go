package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Log     LogConfig
	CORS    CORSConfig
	Swagger SwaggerConfig
	Billing BillingConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel de log (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// CORSConfig orígenes permitidos para el frontend.
// Métodos y cabeceras se permiten todos; solo los orígenes son configurables.
type CORSConfig struct {
	AllowOrigins     []string
	AllowCredentials bool
}

// Wildcard indica si la lista permite cualquier origen.
func (c CORSConfig) Wildcard() bool {
	for _, o := range c.AllowOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// SwaggerConfig ubicación del swagger.json servido en /docs. Vacío desactiva la UI.
type SwaggerConfig struct {
	FilePath string
}

// BillingConfig parámetros de los documentos de factura.
type BillingConfig struct {
	Currency string // código ISO 4217 usado en el XML
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, CORS_ALLOW_ORIGINS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	port, err := getInt(v, "HTTP_PORT", 8000)
	if err != nil {
		return nil, err
	}
	credentials, err := getBool(v, "CORS_ALLOW_CREDENTIALS", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "facturacion-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: port,
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		CORS: CORSConfig{
			AllowOrigins:     splitList(getString(v, "CORS_ALLOW_ORIGINS", "http://localhost:3000")),
			AllowCredentials: credentials,
		},
		Swagger: SwaggerConfig{
			FilePath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		Billing: BillingConfig{
			Currency: strings.ToUpper(getString(v, "INVOICE_CURRENCY", "USD")),
		},
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT fuera de rango: %d", cfg.HTTP.Port)
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		return nil, fmt.Errorf("config: CORS_ALLOW_ORIGINS vacío")
	}
	if len(cfg.Billing.Currency) != 3 {
		return nil, fmt.Errorf("config: INVOICE_CURRENCY debe ser un código ISO 4217: %q", cfg.Billing.Currency)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return 0, fmt.Errorf("config: %s inválido: %w", key, err)
		}
		return n, nil
	default:
		return v.GetInt(key), nil
	}
}

func getBool(v *viper.Viper, key string, def bool) (bool, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch v.Get(key).(type) {
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return false, fmt.Errorf("config: %s inválido: %w", key, err)
		}
		return b, nil
	default:
		return v.GetBool(key), nil
	}
}

// splitList separa una lista por comas descartando entradas vacías.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
