package pinata

import (
	"errors"
	"net/http"
)

var (
	ErrRequestFailed = errors.New("request failed")
)

const DefaultEndpoint = "https://api.pinata.cloud"

type PinataMetadata struct {
	Name string `json:"name,omitempty"`
	// can only store string, bool, int
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

type PinataOptions struct {
	CidVersion CidVersion `json:"cidVersion"`
}

type CidVersion uint8

const (
	CidVersion_0 CidVersion = 0
	CidVersion_1 CidVersion = 1
)

type PinOptions struct {
	Metadata      *PinataMetadata `json:"pinataMetadata,omitempty"`
	Options       *PinataOptions  `json:"pinataOptions,omitempty"`
	PinataContent interface{}     `json:"pinataContent"`
}

type Config struct {
	Endpoint   string
	ApiKey     string
	ApiSecret  string
	HttpClient *http.Client
	// Metadata and Options are attached to every pin
	Metadata *PinataMetadata
	Options  *PinataOptions
}

type Option func(*Config) error

func WithEndpoint(endpoint string) Option {
	return func(cfg *Config) error {
		cfg.Endpoint = endpoint
		return nil
	}
}

func WithHttpClient(client *http.Client) Option {
	return func(cfg *Config) error {
		cfg.HttpClient = client
		return nil
	}
}

func WithMetadata(metadata PinataMetadata) Option {
	return func(cfg *Config) error {
		cfg.Metadata = &metadata
		return nil
	}
}

func WithOptions(pinataOptions PinataOptions) Option {
	return func(cfg *Config) error {
		if pinataOptions.CidVersion > CidVersion_1 {
			return errors.New("unsupported cid version")
		}
		cfg.Options = &pinataOptions
		return nil
	}
}
