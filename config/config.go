package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		CSRF struct {
			Enable bool   `envconfig:"ENABLE"`
			Key    string `envconfig:"KEY"`
			Secure bool   `envconfig:"SECURE"`
		} `envconfig:"CSRF"`
	} `envconfig:"APP"`

	Backend struct {
		BaseURL        string `envconfig:"BASE_URL"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS"`
	} `envconfig:"BACKEND"`

	Session struct {
		CookieName string `envconfig:"COOKIE_NAME"`
		TTLMinutes int    `envconfig:"TTL_MINUTES"`
		Secure     bool   `envconfig:"SECURE"`
	} `envconfig:"SESSION"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	Booking struct {
		MinVisitors      int     `envconfig:"MIN_VISITORS"`
		LookaheadDays    int     `envconfig:"LOOKAHEAD_DAYS"`
		OTPWindowSeconds int     `envconfig:"OTP_WINDOW_SECONDS"`
		OTPResendPerMin  float64 `envconfig:"OTP_RESEND_PER_MIN"`
	} `envconfig:"BOOKING"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		conf.applyDefaults()

		initialized = true

		log.Info().Msg("Portal configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "3000"
	}

	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://localhost:8000"
	}

	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = 15
	}

	if c.Session.CookieName == "" {
		c.Session.CookieName = "campusvisit_session"
	}

	if c.Session.TTLMinutes <= 0 {
		c.Session.TTLMinutes = 120
	}

	if c.Cache.TTL <= 0 {
		c.Cache.TTL = 300
	}

	if c.Booking.MinVisitors <= 0 {
		c.Booking.MinVisitors = 1
	}

	if c.Booking.LookaheadDays <= 0 {
		c.Booking.LookaheadDays = 120
	}

	if c.Booking.OTPWindowSeconds <= 0 {
		c.Booking.OTPWindowSeconds = 300
	}

	if c.Booking.OTPResendPerMin <= 0 {
		c.Booking.OTPResendPerMin = 2
	}
}
