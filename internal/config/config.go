// Package config is used to define a yaml representation of the dsconf config
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nasvillage-tools/dsconf/internal/version"
	"github.com/nasvillage-tools/dsconf/pkg/pg"
	"go.uber.org/zap/zapcore"

	"gopkg.in/yaml.v2"
)

/*
 * This module reads the config file and returns a config object with all entries from the config yaml file.
 */

const (
	envConfName     = "DSCONFCONFIG"
	defaultConfFile = "/etc/dsconf/config.yaml"

	defaultNslcdFile = "/etc/nslcd.conf"
	defaultLdapFile  = "/etc/openldap/ldap.conf"
)

// GeneralConfig is a definition of the generic part of the config yaml file
type GeneralConfig struct {
	LogLevel zapcore.Level `yaml:"loglevel"`
	RunDelay time.Duration `yaml:"run_delay"`
	Debug    bool          `yaml:"debug"`
}

// FilesConfig holds the paths of the client config files that dsconf renders
type FilesConfig struct {
	NslcdFile string `yaml:"nslcd_file"`
	LdapFile  string `yaml:"ldap_file"`
}

func (fc *FilesConfig) setDefaults() {
	if fc.NslcdFile == "" {
		fc.NslcdFile = defaultNslcdFile
	}
	if fc.LdapFile == "" {
		fc.LdapFile = defaultLdapFile
	}
}

// DsConfig holds all config that dsconf needs for a render run
type DsConfig struct {
	GeneralConfig GeneralConfig `yaml:"general"`
	PgDsn         pg.ConnParams `yaml:"postgresql_dsn"`
	Files         FilesConfig   `yaml:"files"`
}

// NewConfig will instantiate a new DsConfig and return it
func NewConfig() (config DsConfig, err error) {
	var configFile string
	var debug bool
	var displayVersion bool
	flag.BoolVar(&debug, "d", false, "Add debugging output")
	flag.BoolVar(&displayVersion, "v", false, "Show version information")
	flag.StringVar(&configFile, "c", os.Getenv(envConfName), "Path to configfile")

	flag.Parse()
	if displayVersion {
		fmt.Println(version.GetAppVersion())
		os.Exit(0)
	}
	if configFile == "" {
		configFile = defaultConfFile
	}
	configFile, err = filepath.EvalSymlinks(configFile)
	if err != nil {
		return config, err
	}

	// This only parsed as yaml, nothing else
	// #nosec
	yamlConfig, err := os.ReadFile(configFile)
	if err != nil {
		return config, err
	}
	err = yaml.Unmarshal(yamlConfig, &config)
	config.GeneralConfig.Debug = config.GeneralConfig.Debug || debug
	config.Files.setDefaults()
	return config, err
}
