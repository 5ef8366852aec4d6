package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server          ServerConfig          `mapstructure:"server"`
	Metrics         MetricsConfig         `mapstructure:"metrics"`
	Database        DatabaseConfig        `mapstructure:"database"`
	Redis           RedisConfig           `mapstructure:"redis"`
	FaceRecognition FaceRecognitionConfig `mapstructure:"face_recognition"`
	Proctoring      ProctoringConfig      `mapstructure:"proctoring"`
	Kafka           KafkaConfig           `mapstructure:"kafka"`
	Certificate     CertificateConfig     `mapstructure:"certificate"`
	WebSocket       WebSocketConfig       `mapstructure:"websocket"`
}

type ServerConfig struct {
	Port        int           `mapstructure:"port"`
	MetricsPort int           `mapstructure:"metrics_port"`
	SecretKey   string        `mapstructure:"secret_key"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
	EnableStreams bool `mapstructure:"enable_streams"`
	Workers       int  `mapstructure:"workers"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type FaceRecognitionConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Token          string        `mapstructure:"token"`
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxFailures    uint32        `mapstructure:"max_failures"`
	BreakerTimeout time.Duration `mapstructure:"breaker_timeout"`
	InitTimeout    time.Duration `mapstructure:"init_timeout"`
	RetryInterval  time.Duration `mapstructure:"retry_interval"`
}

type ProctoringConfig struct {
	NoFaceThreshold    int           `mapstructure:"no_face_threshold"`
	LookAwayThreshold  int           `mapstructure:"look_away_threshold"`
	GazeDistance       float64       `mapstructure:"gaze_distance"`
	IdentityThreshold  float64       `mapstructure:"identity_threshold"`
	MaxWarnings        int           `mapstructure:"max_warnings"`
	FrameMaxWidth      int           `mapstructure:"frame_max_width"`
	FramesPerSecond    float64       `mapstructure:"frames_per_second"`
	FrameBurst         int           `mapstructure:"frame_burst"`
	EnrollmentCacheTTL time.Duration `mapstructure:"enrollment_cache_ttl"`
}

type KafkaConfig struct {
	Enabled  bool                   `mapstructure:"enabled"`
	Settings map[string]interface{} `mapstructure:"settings"`
}

type CertificateConfig struct {
	Issuer              string `mapstructure:"issuer"`
	VerificationBaseURL string `mapstructure:"verification_base_url"`
}

type WebSocketConfig struct {
	MaxConnections int `mapstructure:"max_connections"`
}

var globalConfig Config

func Load(configPath string) error {
	v := viper.New()
	setDefaultValues(v)
	if err := loadConfigFile(v, configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("⚠️ Warning: Could not load main config file: %v", err)
	}
	return nil
}

func loadConfigFile(v *viper.Viper, configPath, fileName string, out interface{}) error {
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
		// Environment variables and defaults only.
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

// setDefaultValues registers every key so AutomaticEnv can override it without a config file.
func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.secret_key", "")
	v.SetDefault("server.token_ttl", 24*time.Hour)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.enable_latency", true)
	v.SetDefault("metrics.enable_streams", true)
	v.SetDefault("metrics.workers", 4)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "trustproctor")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.tls", false)

	v.SetDefault("face_recognition.base_url", "http://localhost:8001")
	v.SetDefault("face_recognition.token", "")
	v.SetDefault("face_recognition.timeout", 10*time.Second)
	v.SetDefault("face_recognition.max_failures", 5)
	v.SetDefault("face_recognition.breaker_timeout", 30*time.Second)
	v.SetDefault("face_recognition.init_timeout", 30*time.Second)
	v.SetDefault("face_recognition.retry_interval", 10*time.Second)

	v.SetDefault("proctoring.no_face_threshold", 5)
	v.SetDefault("proctoring.look_away_threshold", 10)
	v.SetDefault("proctoring.gaze_distance", 0.3)
	v.SetDefault("proctoring.identity_threshold", 0.7)
	v.SetDefault("proctoring.max_warnings", 3)
	v.SetDefault("proctoring.frame_max_width", 640)
	v.SetDefault("proctoring.frames_per_second", 1.0)
	v.SetDefault("proctoring.frame_burst", 3)
	v.SetDefault("proctoring.enrollment_cache_ttl", time.Hour)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.settings", map[string]interface{}{})

	v.SetDefault("certificate.issuer", "AI Exam Platform")
	v.SetDefault("certificate.verification_base_url", "http://localhost:8080/api/v1/certificates")

	v.SetDefault("websocket.max_connections", 1000)
}

func GetConfig() *Config {
	return &globalConfig
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
