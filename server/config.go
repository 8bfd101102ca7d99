package server

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config holds the daemon settings.
type Config struct {
	Addr      string
	AtlasPath string
	LogLevel  string

	ReadLimit   int64
	SendBacklog int
}

// LoadConfig reads settings from an ini file. Missing keys fall back
// to defaults; a missing file is an error.
func LoadConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("server: load config %s: %w", path, err)
	}
	return configFrom(file), nil
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return configFrom(ini.Empty())
}

func configFrom(file *ini.File) Config {
	sec := file.Section("server")
	return Config{
		Addr:        sec.Key("Addr").MustString(":8073"),
		AtlasPath:   sec.Key("AtlasPath").MustString(""),
		LogLevel:    sec.Key("LogLevel").MustString("info"),
		ReadLimit:   sec.Key("ReadLimit").MustInt64(1 << 20),
		SendBacklog: sec.Key("SendBacklog").MustInt(16),
	}
}
