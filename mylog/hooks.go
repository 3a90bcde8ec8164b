package mylog

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const logFileName = "mide.log"

// NewFileRotateHooker sends every level to a file under path, rotated daily and kept for age days.
func NewFileRotateHooker(path string, age uint32) (logrus.Hook, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, err
	}
	if age == 0 {
		age = 7
	}
	logPath := filepath.Join(path, logFileName)
	writer, err := rotatelogs.New(
		logPath+".%Y%m%d",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(time.Duration(age)*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}
	return lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, &logrus.JSONFormatter{}), nil
}

// functionHooker tags warnings and errors with the function that logged them.
type functionHooker struct{}

func LoadFunctionHooker(l *logrus.Logger) {
	l.Hooks.Add(functionHooker{})
}

func (functionHooker) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel}
}

func (functionHooker) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "sirupsen/logrus") && !strings.Contains(frame.Function, "functionHooker") {
			entry.Data["func"] = frame.Function
			return nil
		}
		if !more {
			return nil
		}
	}
}
