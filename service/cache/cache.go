package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/hofa/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// OneTimeGetter loads a value on a cache miss. It must return a pointer.
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

type Service interface {
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl time.Duration
	Pfx string
	// SizeMB of the in-process store, at least 1
	SizeMB      int
	Serialize   Serializer
	Deserialize Deserializer
}
