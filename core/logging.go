package core

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

// logFile is the rotated file the shared logger tees to, if any.
var (
	logFileMu   sync.Mutex
	logFile     io.WriteCloser
	logFileName string
)

func getLogger() *logger {
	once.Do(func() {
		singleton = &logger{newLogger(os.Stderr)}
	})
	return singleton
}

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "lina 📐",
	})
	l.SetLevel(log.InfoLevel)
	return l
}

// ConfigureLogging sets the level of the shared logger and, when file is not
// empty, tees every entry to a size-rotated log file. Calling it again with the
// same file keeps the open rotator; a different or empty file closes it.
func ConfigureLogging(level string, file string) error {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}

	logFileMu.Lock()
	defer logFileMu.Unlock()

	if logFile != nil && logFileName != file {
		if err := logFile.Close(); err != nil {
			return fmt.Errorf("closing log file %s: %w", logFileName, err)
		}
		logFile, logFileName = nil, ""
	}
	if file != "" && logFile == nil {
		logFile = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   true,
		}
		logFileName = file
	}

	var w io.Writer = os.Stderr
	if logFile != nil {
		w = io.MultiWriter(os.Stderr, logFile)
	}

	l := getLogger()
	l.SetOutput(w)
	l.SetLevel(lvl)
	return nil
}

// SetLogOutput redirects the shared logger, mostly useful in tests.
func SetLogOutput(w io.Writer) {
	getLogger().SetOutput(w)
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
