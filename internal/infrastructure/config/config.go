package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação.
// É montada uma única vez no início do processo e passada explicitamente
// para handlers e gateway; nunca lida de estado global depois disso.
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type DatabaseConfig struct {
	URL         string // DSN completo; tem precedência sobre os campos abaixo
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	// TimeoutSeconds limita cada chamada ao banco (0 = padrão de 5s)
	TimeoutSeconds int
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	// AllowedOrigin é a única origem de navegador permitida
	AllowedOrigin string
}

// Load carrega as configurações do arquivo .env e do ambiente
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("ENV", "development")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("HOST", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIN_CONNS", 2)
	viper.SetDefault("DB_MAX_IDLE_TIME", 300)
	viper.SetDefault("DB_TIMEOUT_SECONDS", 5)
	viper.SetDefault("CORS_ALLOWED_ORIGIN", "http://localhost:5173")

	if err := viper.ReadInConfig(); err != nil {
		// .env é opcional; variáveis de ambiente bastam
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
			Host: viper.GetString("HOST"),
		},
		Database: DatabaseConfig{
			URL:            viper.GetString("DATABASE_URL"),
			Host:           viper.GetString("DB_HOST"),
			Port:           viper.GetInt("DB_PORT"),
			User:           viper.GetString("DB_USER"),
			Password:       viper.GetString("DB_PASS"),
			DBName:         viper.GetString("DB_NAME"),
			SSLMode:        viper.GetString("DB_SSL_MODE"),
			MaxConns:       viper.GetInt("DB_MAX_CONNS"),
			MinConns:       viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime:    viper.GetInt("DB_MAX_IDLE_TIME"),
			TimeoutSeconds: viper.GetInt("DB_TIMEOUT_SECONDS"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigin: viper.GetString("CORS_ALLOWED_ORIGIN"),
		},
	}

	return config, nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Timeout retorna o limite de duração de cada chamada ao banco
func (d *DatabaseConfig) Timeout() time.Duration {
	if d.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(d.TimeoutSeconds) * time.Second
}
