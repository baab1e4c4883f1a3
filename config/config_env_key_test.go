package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":            "mongodb://localhost:27017",
			"connectTimeout": "10s",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"media": map[string]any{
			"publicBaseUrl": "",
			"useSSL":        false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "MEDIA_PUBLICBASEURL", want: "media.publicBaseUrl"},
		{envKey: "MEDIA_USESSL", want: "media.useSSL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Media: &MediaConfig{Endpoint: "localhost:9000", Bucket: "images"}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	assert.Equal(t, "canteenApp", cfg.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, int64(defaultMaxUploadSize), cfg.Media.MaxUploadSize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Mongo: &MongoConfig{Database: "campus", ConnectTimeout: 3 * time.Second},
		Auth:  &AuthConfig{BcryptCost: 12, AccessTokenTTL: time.Hour},
	}

	applyDefaults(cfg)

	assert.Equal(t, "campus", cfg.Mongo.Database)
	assert.Equal(t, 3*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Nil(t, cfg.Media)
}

func TestMediaConfig_Enabled(t *testing.T) {
	var nilCfg *MediaConfig
	assert.False(t, nilCfg.Enabled())
	assert.False(t, (&MediaConfig{Bucket: "images"}).Enabled())
	assert.False(t, (&MediaConfig{Endpoint: "localhost:9000"}).Enabled())
	assert.True(t, (&MediaConfig{Endpoint: "localhost:9000", Bucket: "images"}).Enabled())
}
