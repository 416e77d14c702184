package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var logg = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(os.Stdout)
	return l
}

func GetLogger() *logrus.Logger {
	return logg
}

// InitLogger applies LOG_LEVEL and mirrors output to LOG_FILE when it can be opened.
func InitLogger() {
	level, err := logrus.ParseLevel(GetConfig("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logg.SetLevel(level)

	path := GetConfig("LOG_FILE")
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		logg.Warnf("failed to create log directory: %v", err)
		return
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logg.Warnf("failed to open log file, using stdout only: %v", err)
		return
	}
	logg.SetOutput(io.MultiWriter(os.Stdout, file))
}

func LogError(moduleName string, funcName string, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logg.WithFields(fields).Error(err.Error())
}
