package model

// Config holds the full runtime configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Data    DataConfig    `yaml:"data" mapstructure:"data"`
	Session SessionConfig `yaml:"session" mapstructure:"session"`
}

// ServerConfig configures the HTTP adapter
type ServerConfig struct {
	Addr           string   `yaml:"addr" mapstructure:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	RateLimit      float64  `yaml:"rate_limit" mapstructure:"rate_limit"` // requests/second per client
	RateBurst      int      `yaml:"rate_burst" mapstructure:"rate_burst"`
	FrontendDir    string   `yaml:"frontend_dir" mapstructure:"frontend_dir"` // static frontend mount, empty to disable
}

// DataConfig locates the static verb tables
type DataConfig struct {
	Dir      string `yaml:"dir" mapstructure:"dir"`           // directory holding verbs_forms.json etc.
	Language string `yaml:"language" mapstructure:"language"` // translation language code, e.g. "ru"
}

// SessionConfig bounds quiz session composition
type SessionConfig struct {
	DefaultCount int `yaml:"default_count" mapstructure:"default_count"`
	MaxCount     int `yaml:"max_count" mapstructure:"max_count"`
}

// DefaultConfig returns the built-in defaults, the lowest layer of the
// configuration hierarchy (flags > env > config file > defaults)
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8000",
			AllowedOrigins: []string{
				"http://localhost:8000",
				"http://localhost:3000",
				"http://127.0.0.1:8000",
			},
			RateLimit:   20,
			RateBurst:   40,
			FrontendDir: "frontend",
		},
		Data: DataConfig{
			Dir:      "data",
			Language: "ru",
		},
		Session: SessionConfig{
			DefaultCount: 10,
			MaxCount:     20,
		},
	}
}
