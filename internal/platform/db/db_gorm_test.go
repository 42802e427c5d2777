package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBuildDSN はTCP接続とCloud SQLソケット接続のDSNが正しく組み立てられることを検証します。
func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{
			name: "tcp connection",
			cfg: Config{
				User:     "app",
				Password: "secret",
				Name:     "courses",
				Host:     "127.0.0.1",
				Port:     "5432",
			},
			expected: "host=127.0.0.1 port=5432 user=app password=secret dbname=courses sslmode=disable TimeZone=UTC",
		},
		{
			name: "cloud sql unix socket",
			cfg: Config{
				User:         "app",
				Password:     "secret",
				Name:         "courses",
				InstanceName: "my-project:asia-northeast1:courses-db",
			},
			expected: "host=/cloudsql/my-project:asia-northeast1:courses-db user=app password=secret dbname=courses sslmode=disable TimeZone=UTC",
		},
		{
			name: "instance name takes precedence over host and port",
			cfg: Config{
				User:         "app",
				Password:     "secret",
				Name:         "courses",
				Host:         "127.0.0.1",
				Port:         "5432",
				InstanceName: "my-project:asia-northeast1:courses-db",
			},
			expected: "host=/cloudsql/my-project:asia-northeast1:courses-db user=app password=secret dbname=courses sslmode=disable TimeZone=UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildDSN(tt.cfg))
		})
	}
}

// TestLoadConfig は環境変数から設定が読み込まれることを検証します。
func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "courses")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("INSTANCE_CONNECTION_NAME", "my-project:asia-northeast1:courses-db")

	cfg := LoadConfig()

	assert.Equal(t, "app", cfg.User)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, "courses", cfg.Name)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "5432", cfg.Port)
	assert.Equal(t, "my-project:asia-northeast1:courses-db", cfg.InstanceName)
}
