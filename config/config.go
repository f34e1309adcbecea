// Package config holds the server configuration, loaded from YAML with
// environment-variable expansion.
package config

import (
	"github.com/effective-security/x/configloader"
)

// Config is the top-level server configuration.
type Config struct {
	Bridge Bridge `json:"bridge" yaml:"bridge"`
	Server Server `json:"server" yaml:"server"`
	Cache  Cache  `json:"cache,omitempty" yaml:"cache,omitempty"`

	// MaterialsDir is exposed to agents as the materials_dir resource.
	MaterialsDir string `json:"materials_dir,omitempty" yaml:"materials_dir,omitempty"`
}

// Bridge locates the sidecar that owns the studio COM connection.
type Bridge struct {
	// URL is the base URL of the bridge, e.g. http://127.0.0.1:8090.
	URL string `json:"url" yaml:"url"`
	// AuthToken is sent as a bearer token when set.
	AuthToken string `json:"auth_token,omitempty" yaml:"auth_token,omitempty"`
	// ProjectFile is opened on startup when set.
	ProjectFile string `json:"project_file,omitempty" yaml:"project_file,omitempty"`
}

// Server selects the MCP transport.
type Server struct {
	// Transport is "stdio" or "http".
	Transport string `json:"transport" yaml:"transport"`
	// ListenAddr is the HTTP listen address, used with the http transport.
	ListenAddr string `json:"listen_addr,omitempty" yaml:"listen_addr,omitempty"`
}

// Cache configures the farfield result cache.
type Cache struct {
	// Backend is "", "memory" or "redis".
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty"`
	// RedisURL in redis.ParseURL form, used with the redis backend.
	RedisURL string `json:"redis_url,omitempty" yaml:"redis_url,omitempty"`
	// Prefix namespaces the redis keys.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	// TTL like "1h", 0 keeps entries until the next solver run.
	TTL string `json:"ttl,omitempty" yaml:"ttl,omitempty"`
}

// LoadConfig from file
func LoadConfig(file string) (*Config, error) {
	cfg := new(Config)
	if file == "" {
		return cfg, nil
	}

	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
