package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the parsed value of one configuration type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	// entries maps reflect.Type to *entry.
	entries sync.Map

	dotenvOnce sync.Once
)

// Load parses environment variables into v according to its `env` and
// `envDefault` tags. A .env file in the working directory is read on first
// use if present. Each configuration type is parsed once; later calls copy the
// cached value. A failed parse is not cached, so it can be retried after the
// environment has been fixed.
//
//	type ServerConfig struct {
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//		MongoURL string `env:"MONGODB_URL,required"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	loaded, _ := entries.LoadOrStore(key, &entry{})
	e := loaded.(*entry)

	e.once.Do(func() {
		cfg := *v
		if err := env.Parse(&cfg); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = cfg
	})

	if e.err != nil {
		entries.CompareAndDelete(key, e)
		return e.err
	}

	cfg, ok := e.value.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = cfg
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration so the next Load parses again.
func Reset() {
	entries.Range(func(key, _ any) bool {
		entries.Delete(key)
		return true
	})
}
