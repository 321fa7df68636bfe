package main

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	bValidator "github.com/x-xyz/hofa/base/validator"
	"github.com/x-xyz/hofa/domain"
)

type PinataConfig struct {
	ApiKey    string `mapstructure:"api-key"`
	ApiSecret string `mapstructure:"api-secret"`
	Endpoint  string `mapstructure:"endpoint" validate:"omitempty,url"`
}

type Config struct {
	Debug bool   `mapstructure:"debug"`
	Rpc   string `mapstructure:"rpc" validate:"omitempty,url"`
	// RpcConcurrency bounds the in-flight rpc calls
	RpcConcurrency int    `mapstructure:"rpc-concurrency" validate:"min=1"`
	PrivateKey     string `mapstructure:"private-key"`
	// ChainId binds the signer to a network, 0 asks the rpc
	ChainId int64 `mapstructure:"chain-id" validate:"min=0"`
	// Contract overrides the address table lookup
	Contract string `mapstructure:"contract" validate:"omitempty,hexaddr"`
	// AddressTable is a json file merged over the embedded table
	AddressTable   string        `mapstructure:"address-table" validate:"omitempty,file"`
	Confirmations  uint64        `mapstructure:"confirmations"`
	ConfirmTimeout time.Duration `mapstructure:"confirm-timeout"`

	Pinata  PinataConfig `mapstructure:"pinata"`
	IpfsApi string       `mapstructure:"ipfs-api"`
}

// flagKeys maps flag names to their config key when they differ.
var flagKeys = map[string]string{
	"pinata-api-key":    "pinata.api-key",
	"pinata-api-secret": "pinata.api-secret",
	"pinata-endpoint":   "pinata.endpoint",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("hofa", pflag.ContinueOnError)
	fs.String("config", "", "yaml config file")
	fs.Bool("debug", false, "debug logs")
	fs.String("rpc", "", "json-rpc endpoint")
	fs.Int("rpc-concurrency", 8, "max in-flight rpc calls")
	fs.String("private-key", "", "hex private key of the signer, read-only without it")
	fs.Int64("chain-id", 0, "network id of the signer")
	fs.String("contract", "", "contract address, skips the address table")
	fs.String("address-table", "", "json address table merged over the embedded one")
	fs.Uint64("confirmations", 1, "confirmations to wait for, 0 returns once submitted")
	fs.Duration("confirm-timeout", 5*time.Minute, "max wait for confirmations, 0 for none")
	fs.String("pinata-api-key", "", "pinata api key")
	fs.String("pinata-api-secret", "", "pinata api secret")
	fs.String("pinata-endpoint", "", "pinata api endpoint")
	fs.String("ipfs-api", "", "ipfs node api, used when pinata isn't configured")

	// command options
	fs.String("title", "", "artwork title")
	fs.String("description", "", "artwork description")
	fs.Uint64("royalties", 0, "royalties in basis points")
	return fs
}

// loadConfig reads, in increasing precedence, the config file, HOFA_*
// environment variables and flags.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	v.SetConfigType("yaml")
	v.SetEnvPrefix("hofa")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if k, ok := flagKeys[f.Name]; ok {
			key = k
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return nil, bindErr
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, xerrors.Errorf("%w: config %s: %v", domain.ErrBadParamInput, file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}
	if err := bValidator.NewStructValidator(bValidator.New()).Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
