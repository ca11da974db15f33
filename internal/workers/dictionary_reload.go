// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"time"

	"github.com/MKhiriev/go-xkpasswd/internal/dictionary"
	"github.com/MKhiriev/go-xkpasswd/internal/logger"
)

// dictionaryReloadWorker periodically re-reads the word-list file backing a
// [dictionary.Store], so a running server picks up edits to the file without
// a restart.
type dictionaryReloadWorker struct {
	store    *dictionary.Store
	interval time.Duration

	logger *logger.Logger
}

// NewDictionaryReloadWorker returns a [Worker] that reloads store every
// interval. A non-positive interval disables the worker.
func NewDictionaryReloadWorker(store *dictionary.Store, interval time.Duration, logger *logger.Logger) Worker {
	return &dictionaryReloadWorker{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

func (w *dictionaryReloadWorker) Run() {
	if w.interval <= 0 {
		w.logger.Info().Msg("dictionary reload worker disabled")
		return
	}

	w.logger.Info().Dur("interval", w.interval).Msg("dictionary reload worker started")
	go w.loop()
}

func (w *dictionaryReloadWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for range ticker.C {
		reloaded, err := w.store.Reload()
		if err != nil {
			w.logger.Error().Err(err).Msg("dictionary reload failed")
			continue
		}
		if reloaded {
			w.logger.Info().Msg("dictionary reloaded")
		}
	}
}
