package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so that JSON config files can express
// durations either as strings ("10s", "1h") or as raw nanosecond numbers.
type Duration struct {
	time.Duration
}

// UnmarshalJSON implements json.Unmarshaler for [Duration].
func (d *Duration) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case float64:
		d.Duration = time.Duration(v)
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", v, err)
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration value")
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// [Duration] fields so that an optional config file can be decoded and then
// mapped onto the canonical config type.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Catalog struct {
		BaseURL        string   `json:"base_url"`
		PublicKey      string   `json:"public_key"`
		PrivateKey     string   `json:"private_key"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     int      `json:"retry_count"`
	} `json:"catalog,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

// parseJSON reads and decodes the JSON config file at jsonFilePath and maps
// it onto a fresh [StructuredConfig].
//
// Returns a wrapped error if the file cannot be opened or decoded.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error opening json config file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json config file: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    jsonCfg.App.TokenDuration.Duration,
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			Version:          jsonCfg.App.Version,
		},
		Catalog: Catalog{
			BaseURL:        jsonCfg.Catalog.BaseURL,
			PublicKey:      jsonCfg.Catalog.PublicKey,
			PrivateKey:     jsonCfg.Catalog.PrivateKey,
			RequestTimeout: jsonCfg.Catalog.RequestTimeout.Duration,
			RetryCount:     jsonCfg.Catalog.RetryCount,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: jsonCfg.Server.RequestTimeout.Duration,
		},
	}, nil
}
