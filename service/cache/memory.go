package cache

import (
	"encoding/json"
	"reflect"

	"github.com/coocood/freecache"

	"github.com/x-xyz/hofa/base/ctx"
)

type memory struct {
	cfg   ServiceConfig
	cache *freecache.Cache
}

// NewMemory returns a cache kept in process memory, entries expire after
// cfg.Ttl and the oldest are evicted once the store is full.
func NewMemory(cfg ServiceConfig) Service {
	if cfg.Serialize == nil {
		cfg.Serialize = json.Marshal
	}
	if cfg.Deserialize == nil {
		cfg.Deserialize = json.Unmarshal
	}
	if cfg.SizeMB < 1 {
		cfg.SizeMB = 1
	}
	return &memory{
		cfg:   cfg,
		cache: freecache.NewCache(cfg.SizeMB * 1024 * 1024),
	}
}

func (im *memory) key(key string) []byte {
	if im.cfg.Pfx == "" {
		return []byte(key)
	}
	return []byte(im.cfg.Pfx + ":" + key)
}

func (im *memory) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err != nil && err != ErrNotFound {
		c.WithError(err).WithField("key", key).Error("Get failed")
		return err
	} else if err == nil {
		return nil
	}

	val, err := getter()
	if err != nil {
		c.WithError(err).WithField("key", key).Error("GetByFunc getter failed")
		return err
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithError(err).WithField("key", key).Error("Set failed")
	}

	reflect.ValueOf(container).Elem().Set(reflect.ValueOf(val).Elem())
	return nil
}

func (im *memory) Get(c ctx.Ctx, key string, container interface{}) error {
	val, err := im.cache.Get(im.key(key))
	if err == freecache.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithError(err).WithField("key", key).Error("cache.Get failed")
		return err
	}
	if err := im.cfg.Deserialize(val, container); err != nil {
		c.WithError(err).WithField("key", key).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *memory) Set(c ctx.Ctx, key string, value interface{}) error {
	val, err := im.cfg.Serialize(value)
	if err != nil {
		c.WithError(err).WithField("key", key).Error("serialize failed")
		return err
	}
	if err := im.cache.Set(im.key(key), val, int(im.cfg.Ttl.Seconds())); err != nil {
		c.WithError(err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *memory) Del(c ctx.Ctx, key string) error {
	im.cache.Del(im.key(key))
	return nil
}
