package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type, so duration fields accept both "30s"
// strings and raw nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Generator struct {
		Preset               string `json:"preset"`
		NumWords             int    `json:"num_words"`
		WordLengthMin        int    `json:"word_length_min"`
		WordLengthMax        int    `json:"word_length_max"`
		Case                 string `json:"case"`
		Separators           string `json:"separators"`
		PaddingDigitsBefore  int    `json:"padding_digits_before"`
		PaddingDigitsAfter   int    `json:"padding_digits_after"`
		PaddingSymbols       string `json:"padding_symbols"`
		PaddingSymbolsBefore int    `json:"padding_symbols_before"`
		PaddingSymbolsAfter  int    `json:"padding_symbols_after"`
		PadToLength          int    `json:"pad_to_length"`
		Count                int    `json:"count"`
	} `json:"generator,omitempty"`

	Dictionary struct {
		Path string `json:"path"`
	} `json:"dictionary,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		DictionaryReloadInterval Duration `json:"dictionary_reload_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Generator: Generator{
			Preset:               jsonCfg.Generator.Preset,
			NumWords:             jsonCfg.Generator.NumWords,
			WordLengthMin:        jsonCfg.Generator.WordLengthMin,
			WordLengthMax:        jsonCfg.Generator.WordLengthMax,
			Case:                 jsonCfg.Generator.Case,
			Separators:           jsonCfg.Generator.Separators,
			PaddingDigitsBefore:  jsonCfg.Generator.PaddingDigitsBefore,
			PaddingDigitsAfter:   jsonCfg.Generator.PaddingDigitsAfter,
			PaddingSymbols:       jsonCfg.Generator.PaddingSymbols,
			PaddingSymbolsBefore: jsonCfg.Generator.PaddingSymbolsBefore,
			PaddingSymbolsAfter:  jsonCfg.Generator.PaddingSymbolsAfter,
			PadToLength:          jsonCfg.Generator.PadToLength,
			Count:                jsonCfg.Generator.Count,
		},
		Dictionary: Dictionary{
			Path: jsonCfg.Dictionary.Path,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			DictionaryReloadInterval: time.Duration(jsonCfg.Workers.DictionaryReloadInterval),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from either a duration string
// ("1h30m") or a raw nanosecond number.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
