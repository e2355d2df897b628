package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// jsonFormatter renders one JSON object per line: the fixed
// timestamp/level/message/app keys plus whatever fields the entry carries.
// Entry fields lose on a key collision with the fixed keys.
type jsonFormatter struct {
	timeFormat string
	app        string
}

func (f *jsonFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	format := f.timeFormat
	if format == "" {
		format = time.RFC3339
	}

	fields := make(logrus.Fields, len(entry.Data)+4)
	for k, v := range entry.Data {
		fields[k] = v
	}
	fields["timestamp"] = entry.Time.Format(format)
	fields["level"] = entry.Level.String()
	fields["message"] = entry.Message
	if f.app != "" {
		fields["app"] = f.app
	}

	line, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode log entry: %w", err)
	}
	return append(line, '\n'), nil
}

// textFormatter writes human-readable lines for local development:
//
//	2006-01-02 15:04:05 [LEVEL] [app] message key=value ...
//
// Fields are sorted by key.
type textFormatter struct {
	timeFormat string
	app        string
	colors     bool
}

func (f *textFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	format := f.timeFormat
	if format == "" {
		format = "2006-01-02 15:04:05"
	}

	level := strings.ToUpper(entry.Level.String())
	if f.colors {
		level = levelColor(entry.Level) + level + "\033[0m"
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "%s [%s] ", entry.Time.Format(format), level)
	if f.app != "" {
		fmt.Fprintf(&b, "[%s] ", f.app)
	}
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}

func levelColor(level logrus.Level) string {
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "\033[31m" // red
	case logrus.WarnLevel:
		return "\033[33m" // yellow
	case logrus.DebugLevel:
		return "\033[37m" // white
	default:
		return "\033[36m" // cyan
	}
}
