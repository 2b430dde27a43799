package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxLogSize = 1024

func resetLogrus(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	resetLogrus(t)
	dir := filepath.Join(t.TempDir(), "logs")

	logFile, err := setupLogging(false, dir, testMaxLogSize)
	require.NoError(t, err)
	assert.Nil(t, logFile)
	assert.Equal(t, io.Discard, logrus.StandardLogger().Out)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no log dir when disabled")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	resetLogrus(t)
	dir := filepath.Join(t.TempDir(), "logs")

	logFile, err := setupLogging(true, dir, testMaxLogSize)
	require.NoError(t, err)
	require.NotNil(t, logFile)
	defer logFile.Close()

	logPath := filepath.Join(dir, logFileName)
	require.FileExists(t, logPath)

	logrus.WithField("target", "start").Debug("drag begin")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "drag begin")
	assert.Contains(t, string(data), "target=start")
}

func TestSetupLogging_Rotation(t *testing.T) {
	resetLogrus(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	require.NoError(t, os.WriteFile(logPath, make([]byte, testMaxLogSize+1), 0o644))

	logFile, err := setupLogging(true, dir, testMaxLogSize)
	require.NoError(t, err)
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	assert.True(t, rotatedFound, "expected a rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(testMaxLogSize))
}

func TestSetupLogging_SmallFileAppends(t *testing.T) {
	resetLogrus(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)
	require.NoError(t, os.WriteFile(logPath, []byte("previous run\n"), 0o644))

	logFile, err := setupLogging(true, dir, testMaxLogSize)
	require.NoError(t, err)
	defer logFile.Close()

	logrus.Info("next run")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "previous run")
	assert.Contains(t, string(data), "next run")
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	resetLogrus(t)

	logFile, err := setupLogging(true, t.TempDir(), testMaxLogSize)
	require.NoError(t, err)
	defer logFile.Close()

	output := logrus.StandardLogger().Out
	assert.NotSame(t, os.Stdout, output)
	assert.NotSame(t, os.Stderr, output)
}

func TestSetupLogging_BadDir(t *testing.T) {
	resetLogrus(t)

	// A regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	logFile, err := setupLogging(true, filepath.Join(blocker, "logs"), testMaxLogSize)
	assert.Error(t, err)
	assert.Nil(t, logFile)
	assert.Equal(t, io.Discard, logrus.StandardLogger().Out)
}

func TestRotatedName(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, filepath.Join("logs", "dirline-20261019-150405.log"),
		rotatedName(filepath.Join("logs", "dirline.log"), now))
}
