package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-xkpasswd/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenPresets screen = iota
	screenResult
)

type appModel struct {
	ctx       context.Context
	generator Generator
	version   string

	currentScreen screen

	presets    []models.PresetInfo
	presetIdx  int
	loading    bool
	generating bool
	spinner    spinner.Model

	count     int
	passwords []models.Password
	resultIdx int

	status  string
	lastErr error
}

func newAppModel(ctx context.Context, generator Generator, version string) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return appModel{
		ctx:       ctx,
		generator: generator,
		version:   version,
		spinner:   s,
		loading:   true,
		count:     1,
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadPresets()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case presetsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.presets = msg.presets
		return m, nil
	case generatedMsg:
		m.generating = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.passwords = msg.passwords
		m.resultIdx = 0
		m.currentScreen = screenResult
		return m, nil
	case copiedMsg:
		m.status = "Скопировано!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.lastErr = msg.err
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.generating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenPresets:
		return m.updatePresets(msg)
	case screenResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	switch m.currentScreen {
	case screenResult:
		return appStyle.Render(m.viewResult())
	default:
		return appStyle.Render(m.viewPresets())
	}
}

func (m appModel) updatePresets(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.presetIdx > 0 {
			m.presetIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.presetIdx < len(m.presets)-1 {
			m.presetIdx++
		}
	case key.Matches(keyMsg, keys.more):
		if m.count < 20 {
			m.count++
		}
	case key.Matches(keyMsg, keys.less):
		if m.count > 1 {
			m.count--
		}
	case key.Matches(keyMsg, keys.enter):
		preset, ok := m.currentPreset()
		if !ok || m.generating {
			return m, nil
		}
		m.generating = true
		return m, tea.Batch(m.spinner.Tick, m.cmdGenerate(preset.Name))
	case key.Matches(keyMsg, keys.quit):
		m.lastErr = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.resultIdx > 0 {
			m.resultIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.resultIdx < len(m.passwords)-1 {
			m.resultIdx++
		}
	case key.Matches(keyMsg, keys.regenerate):
		preset, ok := m.currentPreset()
		if !ok || m.generating {
			return m, nil
		}
		m.generating = true
		return m, tea.Batch(m.spinner.Tick, m.cmdGenerate(preset.Name))
	case key.Matches(keyMsg, keys.copy):
		password, ok := m.currentPassword()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(password.Phrase)
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenPresets
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) currentPreset() (models.PresetInfo, bool) {
	if len(m.presets) == 0 || m.presetIdx < 0 || m.presetIdx >= len(m.presets) {
		return models.PresetInfo{}, false
	}
	return m.presets[m.presetIdx], true
}

func (m appModel) currentPassword() (models.Password, bool) {
	if len(m.passwords) == 0 || m.resultIdx < 0 || m.resultIdx >= len(m.passwords) {
		return models.Password{}, false
	}
	return m.passwords[m.resultIdx], true
}

func (m appModel) viewPresets() string {
	var body string

	if m.loading {
		body = "Загрузка..."
	} else {
		for i, preset := range m.presets {
			cursor := "  "
			if i == m.presetIdx {
				cursor = "> "
			}
			body += fmt.Sprintf("%s%-10s %s\n", cursor, preset.Name, presetSummary(preset.Config))
		}
		body += fmt.Sprintf("\nКоличество паролей: %d", m.count)
	}

	if m.generating {
		body += "\n\nГенерация... " + m.spinner.View()
	}
	if m.lastErr != nil && !errors.Is(m.lastErr, ErrUserQuit) {
		body += "\n\nОшибка: " + m.lastErr.Error()
	}

	return renderPage(
		"xkpasswd "+m.version,
		body,
		"enter: сгенерировать │ ↑/↓: пресет │ +/-: количество │ q: выход",
	)
}

func (m appModel) viewResult() string {
	var body string

	for i, password := range m.passwords {
		cursor := "  "
		if i == m.resultIdx {
			cursor = "> "
		}
		body += cursor + fitText(password.Phrase, 70) + "\n"
	}

	if password, ok := m.currentPassword(); ok {
		body += fmt.Sprintf("\nЭнтропия: слепая %.0f..%.0f бит, фактическая %.0f бит",
			password.Entropy.BlindMin, password.Entropy.BlindMax, password.Entropy.Seen)
	}

	if m.status != "" {
		body += "\n" + m.status
	}
	if m.lastErr != nil {
		body += "\n\nОшибка: " + m.lastErr.Error()
	}

	preset, _ := m.currentPreset()
	return renderPage(
		"Пресет: "+preset.Name,
		body,
		"c: копировать │ g: ещё раз │ esc: назад │ q: выход",
	)
}

func presetSummary(cfg models.Configuration) string {
	return fmt.Sprintf("слов: %d (%d-%d), регистр: %s",
		cfg.NumWords, cfg.WordLengthMin, cfg.WordLengthMax, cfg.Case)
}

func (m appModel) cmdLoadPresets() tea.Cmd {
	ctx := m.ctx
	generator := m.generator
	return func() tea.Msg {
		presets, err := generator.Presets(ctx)
		return presetsLoadedMsg{presets: presets, err: err}
	}
}

func (m appModel) cmdGenerate(preset string) tea.Cmd {
	ctx := m.ctx
	generator := m.generator
	count := m.count
	return func() tea.Msg {
		passwords, err := generator.GeneratePasswords(ctx, models.GenerateRequest{
			Preset: preset,
			Count:  count,
		})
		return generatedMsg{passwords: passwords, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
