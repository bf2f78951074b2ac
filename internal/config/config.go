package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY,required"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	TextModel     string `env:"AI_TEXT_MODEL" envDefault:"gemini-2.5-flash"`
	VisionModel   string `env:"AI_VISION_MODEL" envDefault:"gemini-2.5-pro"`
	DataDir       string `env:"DATA_DIR" envDefault:"data"`
	JWTSecret     string `env:"JWT_SECRET"`
	WebDir        string `env:"WEB_DIR" envDefault:"web"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
