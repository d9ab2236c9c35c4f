package configs

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Icafe  IcafeConfig  `mapstructure:"icafe" validate:"required"`
	Cache  CacheConfig  `mapstructure:"cache" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// IcafeConfig holds credentials and connection settings for the iCafeCloud API.
// CafeID and AuthToken are mandatory; startup fails without them. They are
// normally supplied through the ICAFE_CAFE_ID and ICAFE_AUTH_TOKEN environment
// variables rather than the YAML file.
type IcafeConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	CafeID         string `mapstructure:"cafe_id" validate:"required"`
	AuthToken      string `mapstructure:"auth_token" validate:"required"`
	RequestTimeout int    `mapstructure:"request_timeout" validate:"required,min=1"` // seconds
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Store     string `mapstructure:"store" validate:"required,oneof=memory redis"`
	RedisAddr string `mapstructure:"redis_addr" validate:"required_if=Store redis,omitempty,hostname_port"`
}
