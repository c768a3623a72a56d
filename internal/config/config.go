package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the bridge binaries.
type Config struct {
	// BindAddress is the interface the panel event server binds to.
	BindAddress string `yaml:"bind_address"`
	// BindPort is the TCP port the panel event server listens on.
	BindPort uint16 `yaml:"bind_port"`
	// SIAAccountID is the alarm panel account identifier (3-16 hex characters).
	SIAAccountID string `yaml:"sia_account"`
	// SIAEncryptionKey is the optional hex key of the SIA account. When set,
	// event publishers must present it to be accepted.
	SIAEncryptionKey string `yaml:"sia_encryption_key"`
	// GatewayAddress is the device gateway gRPC address.
	GatewayAddress string `yaml:"gateway_address"`
	// AppID is the camera cloud application id.
	AppID string `yaml:"app_id"`
	// AppSecret is the camera cloud application secret.
	AppSecret string `yaml:"app_secret"`
	// LogLevel is the minimum level for log output.
	LogLevel string `yaml:"log_level"`
	// Timeout is the duration for device gateway RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// StartupCheck controls whether the bridge logs the current camera
	// privacy state once before it starts serving panel events.
	StartupCheck *bool `yaml:"startup_check"`
}

const (
	// DefaultConfigFilename is the default filename for bridge settings.
	DefaultConfigFilename = "sia-bridge-settings.yaml"

	// DefaultBindAddress binds the event server on all interfaces.
	DefaultBindAddress = "0.0.0.0"

	// DefaultBindPort is the default panel event server port.
	DefaultBindPort uint16 = 12128

	// DefaultSIAAccountID is the default alarm panel account identifier.
	DefaultSIAAccountID = "000"

	// DefaultTimeout is the default duration for gateway RPC calls.
	DefaultTimeout = 5 * time.Second
)

// Environment variable names recognized by Load. They override values read
// from the settings file, which keeps containerised deployments file-free.
const (
	EnvBindAddress      = "BIND_IP"
	EnvBindPort         = "BIND_PORT"
	EnvSIAAccount       = "SIA_ACCOUNT"
	EnvSIAEncryptionKey = "SIA_ENCRYPTION_KEY"
	EnvGatewayAddress   = "GATEWAY_ADDRESS"
	EnvAppID            = "IMOU_APP_ID"
	EnvAppSecret        = "IMOU_APP_SECRET"
	EnvLogLevel         = "LOG_LEVEL"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errCredentialsRequired is returned when cloud credentials are missing.
	errCredentialsRequired = errors.New("app id and app secret must be provided")
	// errGatewayAddressRequired is returned when the gateway address is missing.
	errGatewayAddressRequired = errors.New("gateway address must be provided")
	// errAccountFormat is returned when the SIA account id is malformed.
	errAccountFormat = errors.New("SIA account must be 3-16 hex characters")

	// accountPattern matches valid SIA account identifiers.
	accountPattern = regexp.MustCompile(`^[0-9A-Fa-f]{3,16}$`)
)

// Load reads configuration from the provided path, applies environment
// variable overrides and validates essential fields. A missing settings file
// is not an error: deployments may configure the bridge through environment
// variables alone.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	var cfg Config

	contents, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Environment-only configuration.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions, the file carries cloud credentials.
	if err := os.WriteFile(filepath.Clean(path), data, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided configuration for required fields and
// formatting, filling defaults for optional values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.BindAddress == "" {
		cfg.BindAddress = DefaultBindAddress
	}

	if cfg.BindPort == 0 {
		cfg.BindPort = DefaultBindPort
	}

	if cfg.SIAAccountID == "" {
		cfg.SIAAccountID = DefaultSIAAccountID
	}

	if !accountPattern.MatchString(cfg.SIAAccountID) {
		return fmt.Errorf("%w: %q", errAccountFormat, cfg.SIAAccountID)
	}

	if cfg.SIAEncryptionKey != "" {
		if _, err := hex.DecodeString(cfg.SIAEncryptionKey); err != nil {
			return fmt.Errorf("invalid SIA encryption key: %w", err)
		}
	}

	if cfg.AppID == "" || cfg.AppSecret == "" {
		return errCredentialsRequired
	}

	if cfg.GatewayAddress == "" {
		return errGatewayAddressRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.GatewayAddress); err != nil {
		return fmt.Errorf("invalid gateway address: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return nil
}

// StartupCheckEnabled reports whether the startup privacy-state pass should
// run. It defaults to true when the setting is absent.
func (c *Config) StartupCheckEnabled() bool {
	if c.StartupCheck == nil {
		return true
	}

	return *c.StartupCheck
}

// BindSocket returns the host:port string the event server should listen on.
func (c *Config) BindSocket() string {
	return net.JoinHostPort(c.BindAddress, strconv.Itoa(int(c.BindPort)))
}

// applyEnv overrides configuration fields from environment variables.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvBindAddress); ok {
		cfg.BindAddress = v
	}

	if v, ok := os.LookupEnv(EnvBindPort); ok {
		port, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvBindPort, v, err)
		}

		cfg.BindPort = uint16(port)
	}

	if v, ok := os.LookupEnv(EnvSIAAccount); ok {
		cfg.SIAAccountID = v
	}

	if v, ok := os.LookupEnv(EnvSIAEncryptionKey); ok {
		cfg.SIAEncryptionKey = v
	}

	if v, ok := os.LookupEnv(EnvGatewayAddress); ok {
		cfg.GatewayAddress = v
	}

	if v, ok := os.LookupEnv(EnvAppID); ok {
		cfg.AppID = v
	}

	if v, ok := os.LookupEnv(EnvAppSecret); ok {
		cfg.AppSecret = v
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}

	return nil
}
