package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"yashubustudio/sieve/sieve"
)

// ensureKnowledgeFile writes kb to path when the file does not exist yet so
// users have an editable copy of the built-in table. CSV and TSV paths are
// never written. It reports whether a file was written.
func ensureKnowledgeFile(path string, kb *sieve.KnowledgeBase, logger *zap.Logger) bool {
	clean := strings.TrimSpace(path)
	if clean == "" || kb == nil {
		return false
	}
	clean = filepath.Clean(clean)
	if !sieve.IsWritableKnowledgeExt(filepath.Ext(clean)) {
		logger.Debug("knowledge file not bootstrapped", zap.String("path", clean))
		return false
	}
	if _, err := os.Stat(clean); err == nil {
		return false
	} else if !errors.Is(err, os.ErrNotExist) {
		logger.Warn("check knowledge file", zap.String("path", clean), zap.Error(err))
		return false
	}
	if err := sieve.SaveKnowledgeFile(clean, kb); err != nil {
		logger.Warn("write knowledge file", zap.String("path", clean), zap.Error(err))
		return false
	}
	logger.Info("knowledge file created", zap.String("path", clean))
	return true
}

// ensureConfigFile persists cfg when no config file exists.
func ensureConfigFile(path string, cfg sieve.Config, logger *zap.Logger) {
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return
	}
	if err := sieve.SaveConfig(path, cfg); err != nil {
		logger.Warn("write config", zap.String("path", path), zap.Error(err))
	}
}
