package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxFileSizeMB = 50
	defaultMaxBackups    = 20
	sentryFlushTimeout   = 2 * time.Second
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	MaxFileSizeMB    int
	MaxBackups       int
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger and returns a func that flushes
// sentry and closes the log file. Call it right before the process exits.
func Setup(params LoggerSetupParams) (flush func()) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	closers := []func(){}
	if params.SentryEnabled && setupSentry(params) {
		closers = append(closers, func() { sentry.Flush(sentryFlushTimeout) })
	}

	output, closeOutput := logOutput(params)
	logrus.SetOutput(output)
	if closeOutput != nil {
		closers = append(closers, closeOutput)
	}

	return func() {
		for _, c := range closers {
			c()
		}
	}
}

func setupSentry(params LoggerSetupParams) bool {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	})
	if err != nil {
		logrus.Errorf("sentry init: %s", err)
		return false
	}
	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry hook installed")
	return true
}

func logOutput(params LoggerSetupParams) (io.Writer, func()) {
	if params.LogFileName == "" {
		logrus.Infoln("logging to stdout only")
		return os.Stdout, nil
	}

	fileName := params.LogFileName
	if filepath.Ext(fileName) != ".log" {
		fileName += ".log"
	}
	maxSize, maxBackups := params.MaxFileSizeMB, params.MaxBackups
	if maxSize <= 0 {
		maxSize = defaultMaxFileSizeMB
	}
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}

	rotating := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		Compress:   true,
	}
	closeFile := func() { _ = rotating.Close() }

	if !params.LogToStdout {
		logrus.Infof("logging to %s", fileName)
		return rotating, closeFile
	}
	logrus.Infof("logging to %s and stdout", fileName)
	return newTeeWriter(os.Stdout, rotating), closeFile
}

// GetLevel parses a level name, falling back to info for anything unknown.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
