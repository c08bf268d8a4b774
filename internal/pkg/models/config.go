package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	JWT        JWTConfig
	Directions DirectionsConfig
	Match      MatchConfig
	Routes     RoutesConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  int // in minutes
	RefreshExpiration int // in minutes
	Issuer            string
}

// DirectionsConfig contains routing-service client configuration
type DirectionsConfig struct {
	APIKey    string
	TimeoutMs int // per-call timeout; a timed-out call drops the candidate
}

// MatchConfig contains matching pipeline configuration
type MatchConfig struct {
	AirThresholdM     float64 // air-distance cutoff before a route scores as unreachable
	AirCutoff         int     // survivors kept after the air-distance prefilter
	RankCutoff        int     // candidates returned after detour ranking
	SaveRatio         float64 // required fractional distance saving vs. riding alone
	TolerationRatio   float64 // allowed fractional duration increase vs. riding alone
	WeeklyOverlap     bool    // true: any common weekday matches; false: exact mask equality
	DirectionsCacheMn int     // TTL in minutes for cached pickup->dropoff estimates
}

// RoutesConfig contains route service configuration
type RoutesConfig struct {
	FallbackSpeedKmh float64 // duration estimate speed when the routing service is down
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	Format   string // "json" or "console"
	FilePath string
}
