package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/logutil"
)

// Config - Configuration read from a toml file, every value can be overridden by a command line flag
type Config struct {
	Capacity            int64             `toml:"capacity"`
	CollisionResolution string            `toml:"collisionResolution"`
	Hash                string            `toml:"hash"`
	Log                 logutil.LogConfig `toml:"log"`
}

var techniqueNames = map[string]int{
	"array":    crt.OpenAddressing,
	"chaining": crt.SeparateChaining,
}

var hashNames = map[string]int{
	"addition":  hashfunc.SimpleAddition,
	"quadratic": hashfunc.Quadratic,
	"double":    hashfunc.Double,
}

// defaultConfig - Returns the configuration used when no file is given
func defaultConfig() Config {
	return Config{
		Capacity:            1024,
		CollisionResolution: "array",
		Hash:                "addition",
		Log:                 logutil.DefaultLogConfig(),
	}
}

// loadConfig - Returns the default configuration overlaid with the contents of the toml file at path
func loadConfig(path string) (cfg Config, err error) {
	cfg = defaultConfig()
	if path == "" {
		return
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		err = fmt.Errorf("error while reading config file %s: %s", path, err)
		return
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		err = fmt.Errorf("unknown keys in config file %s: %v", path, undecoded)
		return
	}

	return
}

// hashMapConf - Translates the named technique and hash function into a hash map configuration
func (c Config) hashMapConf() (conf memhashmap.Conf[string], err error) {
	technique, ok := techniqueNames[c.CollisionResolution]
	if !ok {
		err = fmt.Errorf("unknown collision resolution %q, use array or chaining", c.CollisionResolution)
		return
	}
	hashType, ok := hashNames[c.Hash]
	if !ok {
		err = fmt.Errorf("unknown hash %q, use addition, quadratic or double", c.Hash)
		return
	}

	conf.CollisionResolutionTechnique = technique
	conf.HashType = hashType

	return
}
