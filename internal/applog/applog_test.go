package applog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swiper/internal/applog"
)

func TestNewLevels(t *testing.T) {
	require.NotPanics(t, func() {
		applog.New(applog.LevelWarn).Warn("warn")
		applog.New(applog.LevelInfo).Info("info")
		applog.New(applog.LevelDebug).Debug("debug")
	})
}

func TestNoop(t *testing.T) {
	log := applog.Noop()
	require.NotPanics(t, func() {
		log.Debug("discarded")
		log.Info("discarded")
		log.Warn("discarded")
	})
}
