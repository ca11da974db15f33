package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-d dictionary file path
//	-preset named configuration template
//	-words number of words per password
//	-word-min/-word-max candidate word length bounds
//	-case case policy (none, first_upper, random, alternate, lower, upper)
//	-separators separator character set ("NONE" disables)
//	-digits-before/-digits-after digit padding group sizes
//	-symbols padding symbol set
//	-symbols-before/-symbols-after padding symbol counts
//	-pad-to fixed total password length
//	-n passwords per invocation
//	-remote base URL of a running daemon
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-reload-interval dictionary reload check interval
//	-copy put the first password on the clipboard
//	-i interactive TUI session
//	-v verbose logging
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var dictionaryPath string
	var preset string
	var numWords, wordMin, wordMax int
	var casePolicy string
	var separators string
	var digitsBefore, digitsAfter int
	var symbols string
	var symbolsBefore, symbolsAfter int
	var padTo int
	var count int
	var remote string
	var requestTimeout time.Duration
	var reloadInterval time.Duration
	var copyToClipboard, interactive, verbose bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&dictionaryPath, "d", "", "Dictionary file path (one word per line)")
	flag.StringVar(&preset, "preset", "", "Preset name (Default, AppleID, NTLM, SecurityQ, Web16, Web32, WiFi, XKCD)")
	flag.IntVar(&numWords, "words", 0, "Number of words per password")
	flag.IntVar(&wordMin, "word-min", 0, "Minimum candidate word length")
	flag.IntVar(&wordMax, "word-max", 0, "Maximum candidate word length")
	flag.StringVar(&casePolicy, "case", "", "Case policy (none, first_upper, random, alternate, lower, upper)")
	flag.StringVar(&separators, "separators", "", `Separator character set ("NONE" disables separators)`)
	flag.IntVar(&digitsBefore, "digits-before", 0, "Digit padding group size before the words")
	flag.IntVar(&digitsAfter, "digits-after", 0, "Digit padding group size after the words")
	flag.StringVar(&symbols, "symbols", "", "Padding symbol set")
	flag.IntVar(&symbolsBefore, "symbols-before", 0, "Padding symbol count at the start")
	flag.IntVar(&symbolsAfter, "symbols-after", 0, "Padding symbol count at the end")
	flag.IntVar(&padTo, "pad-to", 0, "Fixed total password length (pad, never truncate)")
	flag.IntVar(&count, "n", 0, "Passwords per invocation")
	flag.StringVar(&remote, "remote", "", "Base URL of a running go-xkpasswd daemon")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&reloadInterval, "reload-interval", 0, "Dictionary reload check interval (0 disables)")
	flag.BoolVar(&copyToClipboard, "copy", false, "Copy the first generated password to the clipboard")
	flag.BoolVar(&interactive, "i", false, "Interactive TUI session")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")

	flag.Parse()

	return &StructuredConfig{
		Generator: Generator{
			Preset:               preset,
			NumWords:             numWords,
			WordLengthMin:        wordMin,
			WordLengthMax:        wordMax,
			Case:                 casePolicy,
			Separators:           separators,
			PaddingDigitsBefore:  digitsBefore,
			PaddingDigitsAfter:   digitsAfter,
			PaddingSymbols:       symbols,
			PaddingSymbolsBefore: symbolsBefore,
			PaddingSymbolsAfter:  symbolsAfter,
			PadToLength:          padTo,
			Count:                count,
		},
		Dictionary: Dictionary{
			Path: dictionaryPath,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remote,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			DictionaryReloadInterval: reloadInterval,
		},
		CLI: CLI{
			Copy:        copyToClipboard,
			Interactive: interactive,
			Verbose:     verbose,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
