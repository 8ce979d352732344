package config

import (
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Драйверы хранилища
const (
	DriverPostgres   = "postgres"    // реляционная схема
	DriverKVPostgres = "kv-postgres" // ключ-значение в таблице kv_store
	DriverRedis      = "redis"
	DriverMemory     = "memory"
)

type Config struct {
	Env           string            `yaml:"env" env:"ENV" env-default:"local"`
	AdminPassword string            `yaml:"admin_password" env:"ADMIN_PASSWORD" env-default:"admin"`
	SeedDemo      bool              `yaml:"seed_demo" env:"SEED_DEMO"`
	HTTP          HTTPConfig        `yaml:"http"`
	Storage       StorageConfig     `yaml:"storage"`
	FileStorage   FileStorageConfig `yaml:"file_storage"`
	Redis         RedisConf         `yaml:"redis"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HOST"`
	Port string `yaml:"port" env:"PORT" env-default:"3001"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
	// DSN, если задан, важнее параметров database
	DSN      string         `yaml:"dsn" env:"DSN"`
	Database DatabaseConfig `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-default:"postgres"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"music_teacher_website"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type FileStorageConfig struct {
	BaseDir string `yaml:"base_dir" env:"UPLOADS_DIR" env-default:"./uploads"`
	BaseURL string `yaml:"base_url" env:"UPLOADS_URL" env-default:"/uploads"`
	MaxSize int64  `yaml:"max_size" env:"MAX_UPLOAD_SIZE" env-default:"52428800"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`
}

// DSN строка подключения к Postgres
func (c *Config) DSN() string {
	if c.Storage.DSN != "" {
		return c.Storage.DSN
	}

	db := c.Storage.Database
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     net.JoinHostPort(db.Host, db.Port),
		Path:     "/" + db.Name,
		RawQuery: url.Values{"sslmode": {db.SSLMode}}.Encode(),
	}

	return u.String()
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverPostgres, DriverKVPostgres, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return nil
}

// MustLoad читает файл из --config или CONFIG_PATH; без файла конфигурация
// берётся только из переменных окружения.
func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		cfg, err := LoadEnv()
		if err != nil {
			panic("cannot read config: " + err.Error())
		}
		return cfg
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic("cannot read config: " + err.Error())
	}

	return cfg
}

// Load YAML-файл плюс переменные окружения, которые важнее файла
func Load(configPath string) (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func LoadEnv() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
