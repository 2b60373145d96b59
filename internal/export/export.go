// Package export runs one export-then-purge cycle for a single date.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"csvexport/internal/archive"
	"csvexport/internal/config"
	"csvexport/internal/csvfile"
	"csvexport/internal/database"
	"csvexport/internal/logging"
)

// DateLayout is the format of Request.Date and of the date in file names.
const DateLayout = "2006-01-02"

// Request is resolved once from the command line and never changes during a run.
type Request struct {
	Date   string
	Delete bool
}

// easyjson:json
type Result struct {
	Date        string `json:"date"`
	Table       string `json:"table"`
	CSVPath     string `json:"csv_path"`
	ArchivePath string `json:"archive_path"`
	Rows        int    `json:"rows"`
	Deleted     bool   `json:"deleted"`
	Purged      int64  `json:"purged"`
}

type Exporter struct {
	conf    *config.Configuration
	connect func(ctx context.Context, connector string) (*database.DB, error)
	archive func(src string) (string, error)
}

func New(conf *config.Configuration) *Exporter {
	return &Exporter{
		conf:    conf,
		connect: database.Connect,
		archive: archive.Zip,
	}
}

// FileName is the export file name for date.
func FileName(date string) string {
	return fmt.Sprintf("export_%s.csv", date)
}

// Run extracts, writes, archives and then, if requested, purges. Purge only
// starts once the archive is complete; any earlier failure leaves the table untouched.
func (e *Exporter) Run(ctx context.Context, req Request) (*Result, error) {
	if req.Date == "" {
		return nil, fmt.Errorf("export date is not set")
	}

	db, err := e.connect(ctx, e.conf.Connector)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warnf("close database: %s", err)
		}
	}()

	session, err := db.Session(ctx, e.conf.Table, e.conf.DateColumn)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warnf("release connection: %s", err)
		}
	}()

	logging.PrintAndLog("export start")
	logging.PrintAndLog("today: %s", req.Date)

	if err := os.MkdirAll(e.conf.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %q: %w", e.conf.OutputDir, err)
	}
	result := &Result{
		Date:    req.Date,
		Table:   session.Table(),
		CSVPath: filepath.Join(e.conf.OutputDir, FileName(req.Date)),
	}
	logging.PrintAndLog("path_to_csv_file: %s", result.CSVPath)

	if err := e.writeCSV(ctx, session, result); err != nil {
		return nil, err
	}

	result.ArchivePath, err = e.archive(result.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("archive %q: %w", result.CSVPath, err)
	}

	if req.Delete {
		logging.PrintAndLog("delete start")
		result.Purged, err = session.Purge(ctx, req.Date)
		if err != nil {
			return nil, err
		}
		result.Deleted = true
		logging.PrintAndLog("delete done (%d rows)", result.Purged)
	}

	logging.PrintAndLog("export done")
	if summary, err := result.MarshalJSON(); err == nil {
		log.Infof("run summary: %s", summary)
	}
	return result, nil
}

func (e *Exporter) writeCSV(ctx context.Context, session *database.Session, result *Result) error {
	rows, err := session.Extract(ctx, result.Date)
	if err != nil {
		return err
	}
	defer rows.Close()

	result.Rows, err = csvfile.Write(result.CSVPath, rows, e.conf.Delim())
	if err != nil {
		return fmt.Errorf("write %q: %w", result.CSVPath, err)
	}
	log.Debugf("wrote %d rows to %q", result.Rows, result.CSVPath)
	return rows.Close()
}
