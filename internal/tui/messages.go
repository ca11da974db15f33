package tui

import (
	"github.com/MKhiriev/go-xkpasswd/models"
)

type presetsLoadedMsg struct {
	presets []models.PresetInfo
	err     error
}

type generatedMsg struct {
	passwords []models.Password
	err       error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
