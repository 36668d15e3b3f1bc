package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

type writerHook struct {
	mu        sync.Mutex
	Writer    []io.Writer
	LogLevels []logrus.Level
}

func (hook *writerHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	hook.mu.Lock()
	defer hook.mu.Unlock()
	for _, w := range hook.Writer {
		_, _ = w.Write([]byte(line))
	}
	return nil
}

func (hook *writerHook) Levels() []logrus.Level {
	return hook.LogLevels
}

func (hook *writerHook) add(w io.Writer) {
	hook.mu.Lock()
	defer hook.mu.Unlock()
	hook.Writer = append(hook.Writer, w)
}

var (
	e    *logrus.Entry
	hook *writerHook
)

type Logger struct {
	*logrus.Entry
}

func GetLogger() *Logger {
	return &Logger{e}
}

func (l *Logger) GetLoggerWithField(k string, v interface{}) *Logger {
	return &Logger{l.WithField(k, v)}
}

// Configure adds dir/all.log as a second output and switches the level.
func Configure(dir string, debug bool) error {
	if debug {
		e.Logger.SetLevel(logrus.TraceLevel)
	} else {
		e.Logger.SetLevel(logrus.InfoLevel)
	}
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}
	file, err := os.OpenFile(filepath.Join(dir, "all.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return err
	}
	hook.add(file)
	return nil
}

func init() {
	l := logrus.New()
	l.SetReportCaller(true)
	l.Formatter = &logrus.TextFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			filename := path.Base(frame.File)
			return fmt.Sprintf("%s()", frame.Function), fmt.Sprintf("%s:%d", filename, frame.Line)
		},
		DisableColors: true,
		FullTimestamp: true,
	}
	l.SetOutput(io.Discard)

	hook = &writerHook{
		Writer:    []io.Writer{os.Stdout},
		LogLevels: logrus.AllLevels,
	}
	l.AddHook(hook)
	l.SetLevel(logrus.InfoLevel)

	e = logrus.NewEntry(l)
}
