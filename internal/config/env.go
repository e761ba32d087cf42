package config

import (
	"fmt"
	"os"
	"reflect"
)

// loadFromEnv overrides config values with their env-tagged environment
// variables. Every configurable value is a string; durations stay strings
// and are parsed where they are used.
func loadFromEnv(config *Config) error {
	return overrideFromEnv(reflect.ValueOf(config).Elem())
}

// overrideFromEnv recurses into the section structs and replaces each
// env-tagged string field whose variable is set.
func overrideFromEnv(val reflect.Value) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if field.Kind() == reflect.Struct {
			if err := overrideFromEnv(field); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue, exists := os.LookupEnv(envTag)
		if !exists {
			continue
		}

		if field.Kind() != reflect.String || !field.CanSet() {
			return fmt.Errorf("config field %s cannot be set from env var %s", fieldType.Name, envTag)
		}
		field.SetString(envValue)
	}

	return nil
}
