package entity

type Config struct {
	PostgresConfig PostgresConfig   `yaml:"database"`
	JWTSecretKey   string           `yaml:"jwt_secret"`
	Server         ServerConfig     `yaml:"server"`
	Volatility     VolatilityConfig `yaml:"volatility"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// VolatilityConfig holds the presentation thresholds for classifying cost
// movement. Zero values fall back to the defaults in costing.
type VolatilityConfig struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}
