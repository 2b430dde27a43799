package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const logFileName = "dirline.log"

// setupLogging routes the standard logrus logger to <dir>/dirline.log when
// debug is set, rotating a file that has grown past maxSize. Logging is
// discarded otherwise; the terminal belongs to the editor.
// Returns the open log file, nil when disabled.
func setupLogging(debug bool, dir string, maxSize int64) (*os.File, error) {
	if !debug {
		logrus.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logrus.SetOutput(io.Discard)
		return nil, errors.Wrapf(err, "create log dir %s", dir)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxSize {
		if err := os.Rename(path, rotatedName(path, time.Now())); err != nil {
			logrus.SetOutput(io.Discard)
			return nil, errors.Wrap(err, "rotate log")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return nil, errors.Wrap(err, "open log file")
	}

	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return f, nil
}

// rotatedName gives dirline.log a timestamp suffix, e.g. dirline-20060102-150405.log
func rotatedName(path string, now time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return base + "-" + now.Format("20060102-150405") + ext
}
