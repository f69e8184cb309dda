// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tradelanes/config"
	"github.com/katalvlaran/tradelanes/logging"
)

func TestSetup_Level(t *testing.T) {
	logger := log.New()
	var buf bytes.Buffer
	closer, err := logging.Setup(logger, config.LogConfig{Level: "debug"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	logger.Debug("settled planet")
	assert.Contains(t, buf.String(), "settled planet")
}

func TestSetup_InvalidLevelFallsBack(t *testing.T) {
	logger := log.New()
	var buf bytes.Buffer
	closer, err := logging.Setup(logger, config.LogConfig{Level: "chatty"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), "Invalid log level 'chatty'")
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tradelanes.log")
	cfg := config.Default().Log
	cfg.File = path

	logger := log.New()
	var buf bytes.Buffer
	closer, err := logging.Setup(logger, cfg, &buf)
	require.NoError(t, err)

	logger.Info("route computed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "route computed")
	assert.Contains(t, buf.String(), "route computed")
}
