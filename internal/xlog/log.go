// Package xlog is a minimal logrus wrapper used by the icmpv6dump CLI to
// report decode diagnostics. Library code (package icmpv6) never imports
// this package: the codec stays side-effect-free.
package xlog

import (
	"bytes"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// LogLevel mirrors the level gate the teacher's log package keeps next to
// its logrus wrapper, trimmed to the levels this tool actually emits.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case INFO:
		return "info"
	case WARNING:
		return "warning"
	case ERROR:
		return "error"
	case DEBUG:
		return "debug"
	default:
		return "unknown"
	}
}

var level = INFO

type lineFormatter struct{}

func (f *lineFormatter) Format(entry *log.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}
	b.WriteString(entry.Time.Format("2006/01/02 15:04:05"))
	b.WriteString(fmt.Sprintf(" |%.4s| ", entry.Level))
	b.WriteString(entry.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func init() {
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
	log.SetFormatter(&lineFormatter{})
}

// SetLevel gates which of Infoln/Warnln/Errorln/Debugln actually print.
func SetLevel(l LogLevel) {
	level = l
}

func Infoln(format string, v ...any) {
	print(INFO, format, v...)
}

func Warnln(format string, v ...any) {
	print(WARNING, format, v...)
}

func Errorln(format string, v ...any) {
	print(ERROR, format, v...)
}

func Debugln(format string, v ...any) {
	print(DEBUG, format, v...)
}

func print(logLevel LogLevel, format string, v ...any) {
	if logLevel < level {
		return
	}
	msg := fmt.Sprintf(format, v...)
	switch logLevel {
	case INFO:
		log.Infoln(msg)
	case WARNING:
		log.Warnln(msg)
	case ERROR:
		log.Errorln(msg)
	case DEBUG:
		log.Debugln(msg)
	}
}
