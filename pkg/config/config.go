package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "ONNURI_DB_DSN"
	EnvDBHost = "ONNURI_DB_HOST"
	EnvDBUser = "ONNURI_DB_USER"
	EnvDBName = "ONNURI_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Pricing      PricingConfig
	Shop         ShopConfig
	Gallery      GalleryConfig
	Printing     PrintingConfig
	Notices      NoticesConfig
	Admin        AdminConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ONNURI_APP_ENV" required:"true"`
	Port         string `envconfig:"ONNURI_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ONNURI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ONNURI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ONNURI_DB_DSN"`
	Driver string `envconfig:"ONNURI_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ONNURI_DB_HOST"`
	LegacyPort     int    `envconfig:"ONNURI_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ONNURI_DB_USER"`
	LegacyPassword string `envconfig:"ONNURI_DB_PASSWORD"`
	LegacyName     string `envconfig:"ONNURI_DB_NAME"`
	LegacySSLMode  string `envconfig:"ONNURI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ONNURI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ONNURI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ONNURI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ONNURI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ONNURI_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ONNURI_REDIS_ADDR"`
	Password     string        `envconfig:"ONNURI_REDIS_PASSWORD"`
	DB           int           `envconfig:"ONNURI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ONNURI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ONNURI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ONNURI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ONNURI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ONNURI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// PricingConfig points at the upstream pricing engine. The engine owns all price
// computation; this service only forwards form input and consumes the breakdown.
type PricingConfig struct {
	BaseURL        string        `envconfig:"ONNURI_PRICING_BASE_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"ONNURI_PRICING_REQUEST_TIMEOUT" default:"15s"`
	InFlightTTL    time.Duration `envconfig:"ONNURI_PRICING_INFLIGHT_TTL" default:"30s"`
}

// ShopConfig carries the supplier identity block printed on every quote document
// and the contact points the channel dispatchers hand off to.
type ShopConfig struct {
	Name               string `envconfig:"ONNURI_SHOP_NAME" default:"온누리인쇄나라"`
	Representative     string `envconfig:"ONNURI_SHOP_REPRESENTATIVE" default:"류도현"`
	RegistrationNumber string `envconfig:"ONNURI_SHOP_REGISTRATION_NUMBER" default:"491-20-00640"`
	Address            string `envconfig:"ONNURI_SHOP_ADDRESS" default:"서울 금천구 가산디지털1로 142 가산더스카이밸리1차 8층 816호"`
	BusinessType       string `envconfig:"ONNURI_SHOP_BUSINESS_TYPE" default:"제조, 소매, 서비스업"`
	BusinessItems      string `envconfig:"ONNURI_SHOP_BUSINESS_ITEMS" default:"경인쇄, 문구, 출력, 복사, 제본"`
	BankAccount        string `envconfig:"ONNURI_SHOP_BANK_ACCOUNT" default:"신한 110-493-223413"`
	Phone              string `envconfig:"ONNURI_SHOP_PHONE" default:"02-6338-7123"`
	Mobile             string `envconfig:"ONNURI_SHOP_MOBILE" default:"010-2624-7123"`
	OrderEmail         string `envconfig:"ONNURI_SHOP_ORDER_EMAIL" default:"print7123@naver.com"`
	KakaoChannelURL    string `envconfig:"ONNURI_SHOP_KAKAO_CHANNEL_URL" default:"http://pf.kakao.com/_kjRIj"`
	SmartstoreBaseURL  string `envconfig:"ONNURI_SHOP_SMARTSTORE_BASE_URL" default:"https://smartstore.naver.com/print7123"`
}

type GalleryConfig struct {
	UploadDir     string `envconfig:"ONNURI_GALLERY_UPLOAD_DIR" default:"uploads"`
	MaxUploadMB   int    `envconfig:"ONNURI_GALLERY_MAX_UPLOAD_MB" default:"16"`
	PublicPathFmt string `envconfig:"ONNURI_GALLERY_PUBLIC_PATH_FMT" default:"/uploads/%s"`
}

// PrintingConfig drives the print-export timing plan. The instruction delay exists
// so the save-as-PDF notice can be read before the print dialog steals focus.
type PrintingConfig struct {
	InstructionDelay time.Duration `envconfig:"ONNURI_PRINT_INSTRUCTION_DELAY" default:"2s"`
	PrintAfterLoad   time.Duration `envconfig:"ONNURI_PRINT_AFTER_LOAD" default:"1s"`
	AutoCloseAfter   time.Duration `envconfig:"ONNURI_PRINT_AUTO_CLOSE_AFTER" default:"3s"`
}

type NoticesConfig struct {
	TTL time.Duration `envconfig:"ONNURI_NOTICE_TTL" default:"3s"`
}

// AdminConfig holds the shared secret that gates gallery mutations. Any flag a
// client keeps locally is a display hint only; this token check is the trust
// boundary.
type AdminConfig struct {
	Token string `envconfig:"ONNURI_ADMIN_TOKEN" required:"true"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"ONNURI_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"ONNURI_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
