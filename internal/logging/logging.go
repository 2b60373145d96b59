package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Stdout receives the diagnostic lines printed by PrintAndLog.
var Stdout io.Writer = os.Stdout

// Setup configures the standard logrus logger. With a log file, entries go to a
// rotating file. Without one they go to stderr, and info entries are dropped
// unless verbose since PrintAndLog already echoes them to stdout.
func Setup(logFile string, verbose bool) io.Closer {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	switch {
	case verbose:
		log.SetLevel(log.DebugLevel)
	case logFile == "":
		log.SetLevel(log.WarnLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if logFile == "" {
		log.SetOutput(os.Stderr)
		return io.NopCloser(nil)
	}
	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    200, // megabytes
		MaxBackups: 10,
		MaxAge:     28, // days
		Compress:   true,
	}
	log.SetOutput(rotator)
	return rotator
}

func PrintAndLog(formatString string, args ...interface{}) {
	log.Infof(formatString, args...)
	if !strings.HasSuffix(formatString, "\n") {
		formatString = formatString + "\n"
	}
	fmt.Fprintf(Stdout, formatString, args...)
}
