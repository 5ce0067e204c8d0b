package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Analytics   AnalyticsConfig   `mapstructure:"analytics"`
	Stream      StreamConfig      `mapstructure:"stream"`
	ClickHouse  ClickHouseConfig  `mapstructure:"clickhouse" validate:"required"`
	Postgres    PostgresConfig    `mapstructure:"postgres" validate:"required"`
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

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// AnalyticsConfig tunes the aggregation engine. Zero values fall back to defaults.
type AnalyticsConfig struct {
	Timezone           string `mapstructure:"timezone" validate:"omitempty,timezone"`
	LeaderboardWorkers int    `mapstructure:"leaderboard_workers" validate:"omitempty,min=1,max=256"`
	TopProductsLimit   int    `mapstructure:"top_products_limit" validate:"omitempty,min=1,max=100"`
}

// StreamConfig sizes the in-process write-behind queue. Zero values fall back to defaults.
type StreamConfig struct {
	Partitions int `mapstructure:"partitions" validate:"omitempty,min=1,max=256"`
	Buffer     int `mapstructure:"buffer" validate:"omitempty,min=1"`
}

// ClickHouseConfig holds the analytics event store connection.
type ClickHouseConfig struct {
	Addr        string `mapstructure:"addr" validate:"required,hostname_port"`
	Database    string `mapstructure:"database" validate:"required"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	DialTimeout int    `mapstructure:"dial_timeout" validate:"omitempty,min=1"` // seconds
}

// PostgresConfig holds the catalog database connection.
type PostgresConfig struct {
	DSN             string `mapstructure:"dsn" validate:"required"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"omitempty,min=1"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"omitempty,min=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" validate:"omitempty,min=1"` // seconds
}
