// Package handler holds the handler which does all heavy lifting
package handler

import (
	"os"
	"time"

	"github.com/nasvillage-tools/dsconf/internal/config"
	"github.com/nasvillage-tools/dsconf/pkg/ldap"
	"github.com/nasvillage-tools/dsconf/pkg/pg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.SugaredLogger
	atom zap.AtomicLevel
)

const (
	// nslcd.conf carries the bind password, so it must not be world readable
	nslcdFileMode = 0o600
	ldapFileMode  = 0o644
)

// Initialize can be used to initialize this module with the logger
func Initialize() {
	atom = zap.NewAtomicLevel()
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	log = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		atom,
	)).Sugar()

	pg.Initialize(log)
	ldap.Initialize(log)
}

// DsConfHandler is a struct to hold the data that Handle uses.
// There is only one externally available Method (Handle) which will do all the heavy lifting.
type DsConfHandler struct {
	config   config.DsConfig
	renderer *ldap.Renderer
}

// NewDsConfHandler can be used to initialize a new DsConfHandler struct before calling Handle on it.
func NewDsConfHandler() (dch *DsConfHandler, err error) {
	cnf, err := config.NewConfig()
	if err != nil {
		return dch, err
	}

	if cnf.GeneralConfig.Debug {
		atom.SetLevel(zapcore.DebugLevel)
	} else {
		atom.SetLevel(cnf.GeneralConfig.LogLevel)
	}

	dch = &DsConfHandler{
		config:   cnf,
		renderer: ldap.NewRenderer(pg.NewStore(cnf.PgDsn)),
	}

	return dch, nil
}

// Handle will do all the heavy lifting of handling a dsconf render run
func (dch DsConfHandler) Handle() {
	time.Sleep(dch.config.GeneralConfig.RunDelay)

	for _, subHandler := range []func() error{
		dch.handleNslcd,
		dch.handleLdapConf,
	} {
		err := subHandler()
		if err != nil {
			log.Fatal(err)
		}
	}
}

func (dch DsConfHandler) handleNslcd() (err error) {
	content, err := dch.renderer.Nslcd()
	if err != nil {
		return err
	}
	return writeConfigFile(dch.config.Files.NslcdFile, content, nslcdFileMode)
}

func (dch DsConfHandler) handleLdapConf() (err error) {
	content, err := dch.renderer.LdapConf()
	if err != nil {
		return err
	}
	return writeConfigFile(dch.config.Files.LdapFile, content, ldapFileMode)
}

// writeConfigFile replaces a rendered config file as a whole. An empty
// render still rewrites the file, so a disabled service truncates any
// previously rendered directives instead of leaving them behind.
func writeConfigFile(fileName string, content string, mode os.FileMode) (err error) {
	log.Debugf("writing %s (%d bytes)", fileName, len(content))
	// The file name comes from our own config file, opening it is the point.
	// #nosec
	return os.WriteFile(fileName, []byte(content), mode)
}
