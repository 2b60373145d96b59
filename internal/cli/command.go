package cli

import (
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tebeka/atexit"

	"csvexport/internal/config"
	"csvexport/internal/database"
	"csvexport/internal/export"
	"csvexport/internal/fill"
	"csvexport/internal/logging"
)

type globalFlags struct {
	configFile string
	envFile    string
	logFile    string
	verbose    bool
}

// NewRootCommand builds the export command. clock decides "today".
func NewRootCommand(clock clockwork.Clock) *cobra.Command {
	v := viper.New()
	globals := &globalFlags{}
	opts := Options{}

	root := &cobra.Command{
		Use:   "export [DATE]",
		Short: "Export one day of rows to a zipped CSV file, then delete them",
		Long: `Reads every row of the configured table whose datetime column falls on DATE,
writes them to export_<DATE>.csv, compresses it to export_<DATE>.csv.zip and
deletes the exported rows unless --skip-delete is given.

Connection settings come from POSTGRES_HOST, POSTGRES_DB_NAME, POSTGRES_USER
and POSTGRES_PASSWORD (optionally POSTGRES_PORT and POSTGRES_SSLMODE).`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := setup(v, globals)
			if err != nil {
				return err
			}
			req, err := Resolve(clock, opts, args)
			if err != nil {
				return err
			}
			_, err = export.New(conf).Run(cmd.Context(), req)
			return err
		},
	}
	registerGlobalFlags(root.PersistentFlags(), globals)
	registerConfigFlags(root.PersistentFlags(), v)
	root.Flags().StringVar(&opts.Date, "date", "", "date to export, YYYY-MM-DD (default today)")
	root.Flags().BoolVar(&opts.SkipDelete, "skip-delete", false, "skip deleting records for the given date")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Message: err.Error()}
	})

	root.AddCommand(newSeedCommand(clock, v, globals))
	return root
}

func newSeedCommand(clock clockwork.Clock, v *viper.Viper, globals *globalFlags) *cobra.Command {
	var date string
	var rows int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the configured table if missing and insert fake rows for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := setup(v, globals)
			if err != nil {
				return err
			}
			if date == "" {
				date = clock.Now().Format(export.DateLayout)
			}
			db, err := database.Connect(cmd.Context(), conf.Connector)
			if err != nil {
				return err
			}
			defer db.Close()
			return fill.Populate(cmd.Context(), db, conf.Table, conf.DateColumn, date, rows)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date of the inserted rows, YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&rows, "rows", 100, "number of rows to insert")
	return cmd
}

func registerGlobalFlags(flags *pflag.FlagSet, globals *globalFlags) {
	flags.StringVar(&globals.configFile, "config", "", "optional JSON configuration file")
	flags.StringVar(&globals.envFile, "env-file", ".env", "env file loaded when present; existing envs take precedence")
	flags.StringVar(&globals.logFile, "log-file", "", "write logs to this rotating file")
	flags.BoolVarP(&globals.verbose, "verbose", "v", false, "debug logging")
}

func registerConfigFlags(flags *pflag.FlagSet, v *viper.Viper) {
	for _, f := range []struct{ name, key, usage string }{
		{"output-dir", config.KeyOutputDir, "directory for the csv and zip files"},
		{"table", config.KeyTable, "source table, [schema.]name"},
		{"date-column", config.KeyDateColumn, "datetime column the date filter applies to"},
		{"delimiter", config.KeyDelimiter, "csv field delimiter"},
	} {
		flags.String(f.name, "", f.usage)
		_ = v.BindPFlag(f.key, flags.Lookup(f.name))
	}
}

func setup(v *viper.Viper, globals *globalFlags) (*config.Configuration, error) {
	closer := logging.Setup(globals.logFile, globals.verbose)
	atexit.Register(func() { _ = closer.Close() })
	if err := config.LoadDotEnv(globals.envFile); err != nil {
		return nil, err
	}
	return config.ReadConfiguration(v, globals.configFile)
}

// ExitCode maps an error returned by the command to a process exit code.
func ExitCode(err error) int {
	var usageErr *UsageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &usageErr):
		return 2
	default:
		return 1
	}
}

// Usage formats err together with the command usage when it is a usage error.
func Usage(cmd *cobra.Command, err error) string {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return fmt.Sprintf("Error: %s\n%s", usageErr.Message, cmd.UsageString())
	}
	return fmt.Sprintf("Error: %s", err)
}
