package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kazuki0824/recisdb-rs/casemu"
)

// parseWorkingKey parses a command-line working-key string, accepted as
// a bare hex value or "0x"-prefixed, into its 64-bit form.
func parseWorkingKey(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid working key %q: %w", s, err)
	}
	return v, nil
}

// registryFromFlags builds a key registry seeded with a single working
// key pair when both key0 and key1 are supplied on the command line;
// config.LoadDecode already rejected the case where only one is given.
func registryFromFlags(key0, key1 string) (*casemu.KeyRegistry, error) {
	registry := casemu.NewKeyRegistry()
	if key0 == "" && key1 == "" {
		return registry, nil
	}
	kw0, err := parseWorkingKey(key0)
	if err != nil {
		return nil, err
	}
	kw1, err := parseWorkingKey(key1)
	if err != nil {
		return nil, err
	}
	registry.Add(casemu.WorkingKeyPair{Kw0: kw0, Kw1: kw1})
	return registry, nil
}
