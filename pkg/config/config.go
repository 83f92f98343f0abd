package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// APIServerConfig is the configuration of the api-server process.
type APIServerConfig struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Logging       LoggingConfig       `yaml:"logging"`
	Chains        ChainsConfig        `yaml:"chains"`
	Bridge        BridgeConfig        `yaml:"bridge"`
	OAuth         OAuthConfig         `yaml:"oauth"`
	KeyManagement KeyManagementConfig `yaml:"key_management"`
	Auth          AuthConfig          `yaml:"auth"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8081" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"160s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	// RequestTimeout bounds every request through the chi Timeout middleware.
	// It must outlive BridgeConfig.TransferBudget or transfers are cut mid-confirmation.
	RequestTimeout time.Duration `yaml:"request_timeout" default:"150s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host         string `yaml:"host" default:"localhost"`
	Port         int    `yaml:"port" default:"5432"`
	User         string `yaml:"user" validate:"required"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database" validate:"required"`
	SSLMode      string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
	MaxOpenConns int    `yaml:"max_open_conns" default:"10"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// ChainsConfig names the two chains the card token moves between.
// Chain A is the home chain (ERC20 + OFT adapter), chain B runs the native OFT.
type ChainsConfig struct {
	A ChainConfig `yaml:"a"`
	B ChainConfig `yaml:"b"`
}

// ChainConfig describes one side of the bridge.
type ChainConfig struct {
	Name             string `yaml:"name" validate:"required"`
	RPCURL           string `yaml:"rpc_url" validate:"required,url"`
	ChainID          uint64 `yaml:"chain_id" validate:"required"`
	EndpointID       uint32 `yaml:"endpoint_id" validate:"required"`
	TokenAddress     string `yaml:"token_address" validate:"required,eth_addr"`
	OFTAddress       string `yaml:"oft_address" validate:"required,eth_addr"`
	TokenDecimals    uint8  `yaml:"token_decimals" default:"18"`
	RequiresApproval bool   `yaml:"requires_approval"`
	GasLimit         uint64 `yaml:"gas_limit"`
	MaxGasPrice      string `yaml:"max_gas_price"`
}

// BridgeConfig contains bridge execution settings
type BridgeConfig struct {
	ApprovalTimeout     time.Duration `yaml:"approval_timeout" default:"60s" validate:"gt=0"`
	ConfirmTimeout      time.Duration `yaml:"confirm_timeout" default:"60s" validate:"gt=0"`
	ReceiptPollInterval time.Duration `yaml:"receipt_poll_interval" default:"2s" validate:"gt=0"`
	NetworkSwitchDelay  time.Duration `yaml:"network_switch_delay" default:"1s" validate:"gte=0"`
	BalanceRefreshDelay time.Duration `yaml:"balance_refresh_delay" default:"3s"`
	ExplorerURL         string        `yaml:"explorer_url" default:"https://layerzeroscan.com" validate:"url"`
	WalletKeyEnv        string        `yaml:"wallet_key_env" default:"CARD_BRIDGE_WALLET_KEY"`
}

// TransferBudget is the longest a single transfer request can legitimately take:
// one network switch, one approval receipt and one send confirmation.
func (c BridgeConfig) TransferBudget() time.Duration {
	return c.NetworkSwitchDelay + c.ApprovalTimeout + c.ConfirmTimeout
}

// OAuthConfig contains the social account linking settings
type OAuthConfig struct {
	SessionTTL       time.Duration   `yaml:"session_ttl" default:"10m"`
	SessionRetention time.Duration   `yaml:"session_retention" default:"24h"`
	CleanupInterval  time.Duration   `yaml:"cleanup_interval" default:"1h" validate:"gt=0"`
	RedirectURI      string          `yaml:"redirect_uri" validate:"required,url"`
	Providers        ProvidersConfig `yaml:"providers"`
}

// ProvidersConfig holds per-provider client registrations.
type ProvidersConfig struct {
	X       ProviderConfig `yaml:"x"`
	Discord ProviderConfig `yaml:"discord"`
}

// ProviderConfig is a single OAuth client registration. Empty endpoint
// fields fall back to the provider's public endpoints.
type ProviderConfig struct {
	Enabled         bool     `yaml:"enabled"`
	ClientID        string   `yaml:"client_id" validate:"required_if=Enabled true"`
	ClientSecretEnv string   `yaml:"client_secret_env"`
	AuthURL         string   `yaml:"auth_url" validate:"omitempty,url"`
	TokenURL        string   `yaml:"token_url" validate:"omitempty,url"`
	UserInfoURL     string   `yaml:"userinfo_url" validate:"omitempty,url"`
	Scopes          []string `yaml:"scopes"`
	PKCE            bool     `yaml:"pkce"`
	GuildID         string   `yaml:"guild_id"`
}

// KeyManagementConfig points at the master key used for token encryption at rest
type KeyManagementConfig struct {
	MasterKeyEnv string `yaml:"master_key_env" default:"CARD_BRIDGE_MASTER_KEY"`
}

// AuthConfig contains request authentication settings
type AuthConfig struct {
	JWTSecretEnv    string        `yaml:"jwt_secret_env" default:"CARD_BRIDGE_JWT_SECRET"`
	JWTIssuer       string        `yaml:"jwt_issuer"`
	SignatureMaxAge time.Duration `yaml:"signature_max_age" default:"5m"`
}

// RateLimitConfig configures the shared fixed-window limiter on the OAuth endpoints
type RateLimitConfig struct {
	Enabled    bool          `yaml:"enabled"`
	ValkeyAddr string        `yaml:"valkey_addr" validate:"required_if=Enabled true"`
	Requests   int64         `yaml:"requests" default:"30" validate:"min=1"`
	Window     time.Duration `yaml:"window" default:"1m" validate:"gt=0"`
	KeyPrefix  string        `yaml:"key_prefix" default:"card-bridge:ratelimit"`
}

// LoadAPIServer reads the YAML file at configPath, applies struct defaults and validates the result.
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseAPIServer(raw)
}

// ParseAPIServer builds an APIServerConfig from raw YAML.
func ParseAPIServer(raw []byte) (*APIServerConfig, error) {
	var cfg APIServerConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if budget := cfg.Bridge.TransferBudget(); cfg.Server.RequestTimeout <= budget {
		return nil, fmt.Errorf("config validation failed: server.request_timeout (%s) must exceed "+
			"bridge.network_switch_delay + approval_timeout + confirm_timeout (%s)",
			cfg.Server.RequestTimeout, budget)
	}
	if cfg.Server.WriteTimeout <= cfg.Server.RequestTimeout {
		return nil, fmt.Errorf("config validation failed: server.write_timeout (%s) must exceed server.request_timeout (%s)",
			cfg.Server.WriteTimeout, cfg.Server.RequestTimeout)
	}

	return &cfg, nil
}

// GetConnectionString returns a lib/pq style DSN for the database
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
