package cli

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"csvexport/internal/export"
	"csvexport/internal/logging"
)

// UsageError is returned for command line input that cannot be resolved.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func usageErrorf(format string, args ...interface{}) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// Options are the raw flag values.
type Options struct {
	Date       string
	SkipDelete bool
}

// Resolve computes the export date and the delete decision. The date comes from
// --date, else from the single positional argument, else from today on clock.
// Rows are deleted unless SkipDelete is set.
func Resolve(clock clockwork.Clock, opts Options, args []string) (export.Request, error) {
	logging.PrintAndLog("given_date: %s", opts.Date)
	logging.PrintAndLog("skip_delete_flag: %t", opts.SkipDelete)

	if len(args) > 1 {
		return export.Request{}, usageErrorf("expected at most one date argument, got %d", len(args))
	}

	date := opts.Date
	if len(args) == 1 {
		switch {
		case date == "":
			date = args[0]
		case date != args[0]:
			return export.Request{}, usageErrorf("conflicting dates: --date %s and argument %s", date, args[0])
		}
	}

	if date == "" {
		date = clock.Now().Format(export.DateLayout)
	} else if _, err := time.Parse(export.DateLayout, date); err != nil {
		return export.Request{}, usageErrorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	return export.Request{Date: date, Delete: !opts.SkipDelete}, nil
}
