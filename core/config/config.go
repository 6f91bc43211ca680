package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	AppLogName        = "shell_events.log"

	DefaultShellName  = "myshell"
	DefaultTerminator = ">"
	DefaultMaxAliases = 10
)

// Configuration holds the interpreter's startup settings.
type Configuration struct {
	configFs afero.Fs

	// ShellName is the display name used in the prompt.
	ShellName string `json:"shell_name" validate:"required"`
	// Terminator is the suffix appended to the shell name in the prompt.
	Terminator string `json:"terminator" validate:"required"`
	// MaxAliases bounds the alias table; definitions past it are rejected.
	MaxAliases int `json:"max_aliases" validate:"gte=1"`
	// AliasFile, when set, is loaded into the alias table at startup.
	AliasFile string `json:"alias_file"`
	// LogShellEvents records dispatches and alias mutations to the app log.
	LogShellEvents bool `json:"log_shell_events"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewOsFs()
	}
	return c.configFs
}

// OpenAppLog opens the shell event log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.fs().OpenFile(AppLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
