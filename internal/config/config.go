package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/mailru/easyjson"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Viper keys. Flags bound by the command line use the same names.
const (
	KeyConnector  = "conn"
	KeyOutputDir  = "output_dir"
	KeyTable      = "table"
	KeyDateColumn = "date_column"
	KeyDelimiter  = "delimiter"

	keyHost     = "postgres.host"
	keyPort     = "postgres.port"
	keyDBName   = "postgres.db_name"
	keyUser     = "postgres.user"
	keyPassword = "postgres.password"
	keySSLMode  = "postgres.sslmode"
)

const (
	DefaultTable      = "stock_raw"
	DefaultDateColumn = "datetime"
	DefaultOutputDir  = "."
	DefaultDelimiter  = ","
	DefaultPort       = "5432"
	DefaultSSLMode    = "disable"
)

var envBindings = map[string]string{
	keyHost:       "POSTGRES_HOST",
	keyPort:       "POSTGRES_PORT",
	keyDBName:     "POSTGRES_DB_NAME",
	keyUser:       "POSTGRES_USER",
	keyPassword:   "POSTGRES_PASSWORD",
	keySSLMode:    "POSTGRES_SSLMODE",
	KeyConnector:  "EXPORT_CONN",
	KeyOutputDir:  "EXPORT_OUTPUT_DIR",
	KeyTable:      "EXPORT_TABLE",
	KeyDateColumn: "EXPORT_DATE_COLUMN",
	KeyDelimiter:  "EXPORT_DELIMITER",
}

// required unless a full connection string is configured
var requiredPostgresKeys = []string{keyHost, keyDBName, keyUser, keyPassword}

// easyjson:json
type Configuration struct {
	Connector  string `json:"conn"`
	OutputDir  string `json:"output_dir"`
	Table      string `json:"table"`
	DateColumn string `json:"date_column"`
	Delimiter  string `json:"delimiter"`
}

// Delim returns the field delimiter as a rune.
func (c *Configuration) Delim() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// LoadDotEnv loads envs from path if it exists. Existing envs take precedence.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	switch {
	case err != nil && os.IsNotExist(err):
		return nil
	case err != nil:
		return fmt.Errorf("cannot check env file %q: %w", path, err)
	case info.IsDir():
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("cannot load env file %q: %w", path, err)
	}
	log.Infof("Loaded env file %q", path)
	return nil
}

// ReadFile decodes the optional JSON configuration file.
func ReadFile(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %q: %w", path, err)
	}
	conf := &Configuration{}
	if err := easyjson.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}
	return conf, nil
}

// ReadConfiguration resolves the configuration. Precedence is flags bound on v,
// then environment, then the config file (if any), then defaults.
func ReadConfiguration(v *viper.Viper, file string) (*Configuration, error) {
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeyTable, DefaultTable)
	v.SetDefault(KeyDateColumn, DefaultDateColumn)
	v.SetDefault(KeyDelimiter, DefaultDelimiter)
	v.SetDefault(keyPort, DefaultPort)
	v.SetDefault(keySSLMode, DefaultSSLMode)

	if file != "" {
		fromFile, err := ReadFile(file)
		if err != nil {
			return nil, err
		}
		for key, value := range map[string]string{
			KeyConnector:  fromFile.Connector,
			KeyOutputDir:  fromFile.OutputDir,
			KeyTable:      fromFile.Table,
			KeyDateColumn: fromFile.DateColumn,
			KeyDelimiter:  fromFile.Delimiter,
		} {
			if value != "" {
				v.SetDefault(key, value)
			}
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("cannot bind env %s: %w", env, err)
		}
	}

	conf := &Configuration{
		Connector:  v.GetString(KeyConnector),
		OutputDir:  v.GetString(KeyOutputDir),
		Table:      v.GetString(KeyTable),
		DateColumn: v.GetString(KeyDateColumn),
		Delimiter:  v.GetString(KeyDelimiter),
	}
	if utf8.RuneCountInString(conf.Delimiter) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", conf.Delimiter)
	}

	if conf.Connector == "" {
		missing := lo.Filter(requiredPostgresKeys, func(key string, _ int) bool {
			return v.GetString(key) == ""
		})
		if len(missing) > 0 {
			return nil, fmt.Errorf("missing required environment: %v", lo.Map(missing, func(key string, _ int) string {
				return envBindings[key]
			}))
		}
		conf.Connector = postgresURL(
			v.GetString(keyHost), v.GetString(keyPort), v.GetString(keyDBName),
			v.GetString(keyUser), v.GetString(keyPassword), v.GetString(keySSLMode),
		)
	}
	return conf, nil
}

func postgresURL(host, port, dbName, user, password, sslMode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + dbName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}
