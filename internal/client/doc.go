// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the CLI application runtime.
//
// It wires the generation backend (in-process engine or remote server),
// one-shot stdout output, clipboard integration, and the interactive
// terminal UI into a single process lifecycle.
package client
