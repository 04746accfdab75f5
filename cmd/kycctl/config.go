package main

import (
	"time"

	"github.com/spf13/viper"
)

const secret = "********"

type config struct {
	apiUrl   string
	ApiToken SecretString
	userID   string

	storageBackend string
	minioEndpoint  string
	minioAccessKey string
	MinioSecretKey SecretString
	minioBucket    string
	minioSSL       bool
	CloudinaryUrl  SecretString

	ocrUrl    string
	OcrApiKey SecretString

	pollInterval time.Duration
	listenAddr   string
	webhookPath  string
}

func newConfig() config {
	viper.SetDefault("STORAGE_BACKEND", "minio")
	viper.SetDefault("MINIO_SSL", true)
	viper.SetDefault("POLL_INTERVAL", "5s")
	viper.SetDefault("LISTEN_ADDR", ":8080")
	viper.SetDefault("WEBHOOK_PATH", "/webhooks/kyc")

	// read config
	cfg := config{
		apiUrl:         viper.GetString("API_URL"),
		ApiToken:       NewSecretString(viper.GetString("API_TOKEN")),
		userID:         viper.GetString("USER_ID"),
		storageBackend: viper.GetString("STORAGE_BACKEND"),
		minioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		minioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: NewSecretString(viper.GetString("MINIO_SECRET_KEY")),
		minioBucket:    viper.GetString("MINIO_BUCKET"),
		minioSSL:       viper.GetBool("MINIO_SSL"),
		CloudinaryUrl:  NewSecretString(viper.GetString("CLOUDINARY_URL")),
		ocrUrl:         viper.GetString("OCR_URL"),
		OcrApiKey:      NewSecretString(viper.GetString("OCR_API_KEY")),
		pollInterval:   viper.GetDuration("POLL_INTERVAL"),
		listenAddr:     viper.GetString("LISTEN_ADDR"),
		webhookPath:    viper.GetString("WEBHOOK_PATH"),
	}

	return cfg
}

type SecretString struct {
	secret string
}

func NewSecretString(s string) SecretString {
	return SecretString{s}
}

func (s SecretString) RawString() string {
	return s.secret
}

func (s SecretString) String() string {
	return secret
}

func (s SecretString) ToString() string {
	return secret
}

func (s SecretString) MarshalJSON() ([]byte, error) {
	return []byte(secret), nil
}

func (s SecretString) MarshalText() ([]byte, error) {
	return []byte(secret), nil
}
