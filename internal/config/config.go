package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// 保存先の種類
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	GoEnv string // dev/prod

	StoreName     string // スナップショットのキー名
	StorageDriver string // file / postgres / memory
	StorageDir    string // file のときの保存ディレクトリ
	IDStrategy    string // monotonic / uuid
	AuditCapacity int    // メモリに残す監査ログ件数
	LogLevel      string // debug / info / warn / error

	DatabaseURL      string // あれば Postgres* より優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string

	JWTSecret string // 操作者の特定に使う（空なら匿名扱い）
}

// Loadは.envファイル（あれば）と環境変数から設定を作る。
// 既に環境変数にある値は.envで上書きしない。
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	pgPort, err := atoiDefault("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	auditCap, err := atoiDefault("AUDIT_CAPACITY", 1000)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:  getenv("PORT", "8080"),
		GoEnv: getenv("GO_ENV", "dev"),

		StoreName:     getenv("STORE_NAME", "admin-dashboard-storage"),
		StorageDriver: strings.ToLower(getenv("STORAGE_DRIVER", StorageFile)),
		StorageDir:    getenv("STORAGE_DIR", "./data"),
		IDStrategy:    strings.ToLower(getenv("ID_STRATEGY", "monotonic")),
		AuditCapacity: auditCap,
		LogLevel:      strings.ToLower(getenv("LOG_LEVEL", "info")),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "app"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	//値チェック
	switch cfg.StorageDriver {
	case StorageFile, StoragePostgres, StorageMemory:
	default:
		return Config{}, fmt.Errorf("STORAGE_DRIVER must be one of file, postgres, memory: %q", cfg.StorageDriver)
	}
	switch cfg.IDStrategy {
	case "monotonic", "uuid":
	default:
		return Config{}, fmt.Errorf("ID_STRATEGY must be monotonic or uuid: %q", cfg.IDStrategy)
	}
	if strings.TrimSpace(cfg.StoreName) == "" {
		return Config{}, fmt.Errorf("STORE_NAME is required")
	}
	if cfg.StorageDriver == StorageFile && cfg.StorageDir == "" {
		return Config{}, fmt.Errorf("STORAGE_DIR is required")
	}

	return cfg, nil
}

// ":8080" 形式のアドレス
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
