// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the passphrase synthesis engine: preset
// resolution, length filtering, secure word sampling, case transformation,
// and final assembly under the separator and padding rules.
package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-xkpasswd/internal/dictionary"
	"github.com/MKhiriev/go-xkpasswd/internal/logger"
	"github.com/MKhiriev/go-xkpasswd/internal/random"
	"github.com/MKhiriev/go-xkpasswd/models"
)

type passwordService struct {
	cfg   models.Configuration
	words dictionary.WordSource
	rnd   random.Source

	logger *logger.Logger
}

// NewPasswordService resolves mode into a concrete configuration and
// returns a [PasswordService] over the given word source and random source.
// Returns an [ErrInvalidConfiguration] kind when the mode names an unknown
// preset or the custom configuration violates a basic invariant.
func NewPasswordService(
	mode models.Mode,
	words dictionary.WordSource,
	rnd random.Source,
	logger *logger.Logger,
) (PasswordService, error) {
	cfg, err := Resolve(mode)
	if err != nil {
		return nil, err
	}

	return &passwordService{
		cfg:    cfg,
		words:  words,
		rnd:    rnd,
		logger: logger,
	}, nil
}

func (s *passwordService) Configuration() models.Configuration {
	return s.cfg
}

func (s *passwordService) Generate(ctx context.Context) (models.Password, error) {
	passwords, err := s.GenerateN(ctx, 1)
	if err != nil {
		return models.Password{}, err
	}

	return passwords[0], nil
}

func (s *passwordService) GenerateN(ctx context.Context, n int) ([]models.Password, error) {
	if n < 1 {
		n = 1
	}

	raw, err := s.words.Words()
	if err != nil {
		return nil, err
	}

	filtered := dictionary.Filter(raw, s.cfg.WordLengthMin, s.cfg.WordLengthMax)
	if len(filtered) < s.cfg.NumWords {
		return nil, fmt.Errorf("%w: %d candidate words after filtering, need %d",
			ErrInsufficientDictionary, len(filtered), s.cfg.NumWords)
	}

	entropy := computeEntropy(s.cfg, filtered)

	s.logger.Debug().
		Int("dictionary_size", len(raw)).
		Int("filtered_size", len(filtered)).
		Int("count", n).
		Msg("generating passwords")

	passwords := make([]models.Password, 0, n)
	for i := 0; i < n; i++ {
		phrase, err := s.synthesize(filtered)
		if err != nil {
			return nil, err
		}

		passwords = append(passwords, models.Password{
			Phrase:  phrase,
			Entropy: entropy,
		})
	}

	return passwords, nil
}

// synthesize runs one pass of the engine pipeline over the already filtered
// candidate list: sample, re-case, assemble.
func (s *passwordService) synthesize(filtered []string) (string, error) {
	sampled, err := sampleWords(filtered, s.cfg.NumWords, s.rnd)
	if err != nil {
		return "", err
	}

	cased, err := applyCase(sampled, s.cfg.Case, s.rnd)
	if err != nil {
		return "", err
	}

	return assemble(cased, s.cfg, s.rnd)
}
