// Package logger provides the prefixed, coloured component loggers used across the
// application.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyPrefix = errors.New("logger prefix must not be empty")
	ErrNilWriter   = errors.New("logger writer must not be nil")
)

// Logger writes leveled messages tagged with a component prefix.
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger that tags every line with prefix rendered in color.
func New(prefix string, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if out == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{entry: logrus.NewEntry(l)}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// prefixFormatter renders "<color>[PREFIX]<reset> <level color>[LEVEL]<reset> message".
type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s[%s]%s %s[%s]%s %s\n",
		e.Time.Format("2006/01/02 15:04:05"),
		f.color, f.prefix, config.LogColorReset,
		levelColor(e.Level), levelName(e.Level), config.LogColorReset,
		e.Message,
	)
	return b.Bytes(), nil
}

func levelColor(l logrus.Level) string {
	switch l {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return config.LogErrorColor
	case logrus.WarnLevel:
		return config.LogWarnColor
	default:
		return config.LogInfoColor
	}
}

func levelName(l logrus.Level) string {
	switch l {
	case logrus.WarnLevel:
		return "WARNING"
	case logrus.ErrorLevel:
		return "ERROR"
	case logrus.FatalLevel:
		return "FATAL"
	case logrus.DebugLevel:
		return "DEBUG"
	default:
		return "INFO"
	}
}
