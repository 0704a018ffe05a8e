package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración del proceso.
// Se lee una sola vez al arrancar; nada más abajo vuelve a mirar el entorno.
type Config struct {
	Port      string `env:"PORT"       envDefault:"8080"`
	APIPrefix string `env:"API_PREFIX" envDefault:"/api"`

	Log     Log
	Storage Storage
	Auth    Auth
}

type Log struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	App    string `env:"APP_NAME"   envDefault:"pet-registry"`
}

// Storage describe los backends disponibles. Cuál se usa lo decide storage.Resolve.
type Storage struct {
	Backend string `env:"STORAGE_BACKEND"` // override explícito (remote|local|postgres|sqlite|memory)

	BlobToken  string `env:"BLOB_READ_WRITE_TOKEN"`
	BlobAPIURL string `env:"VERCEL_BLOB_API_URL" envDefault:"https://blob.vercel-storage.com"`

	LocalDataDir string `env:"LOCAL_DATA_DIR" envDefault:".local-data"`

	DatabaseDSN string `env:"DB_DSN"`
	SQLitePath  string `env:"SQLITE_PATH"`

	// Sin esto, load->save entre requests concurrentes es last-write-wins.
	SerializeWrites bool `env:"STORE_SERIALIZE_WRITES" envDefault:"false"`
	// Borra el payload anterior al reemplazar una foto.
	DeleteReplacedPhotos bool `env:"PHOTO_DELETE_REPLACED" envDefault:"false"`
}

type Auth struct {
	Secret     string        `env:"JWT_SECRET"      envDefault:"dev-secret"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL"  envDefault:"1h"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL" envDefault:"24h"`
	Username   string        `env:"AUTH_USERNAME"   envDefault:"admin"`
	Password   string        `env:"AUTH_PASSWORD"   envDefault:"admin"`
}

// Load lee .env (si existe) y luego las variables de entorno.
func Load(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	return Parse()
}

// Parse lee solo variables de entorno.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.APIPrefix = normalizePrefix(cfg.APIPrefix)
	if strings.TrimSpace(cfg.Auth.Secret) == "" {
		return Config{}, errors.New("JWT_SECRET must not be empty")
	}
	return cfg, nil
}

// Addr devuelve la dirección de escucha para http.Server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

func normalizePrefix(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}
