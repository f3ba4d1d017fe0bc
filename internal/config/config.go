package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"github.com/vulpemventures/seedgen/pkg/kdf"
)

const (
	// LogLevelKey is the key to customize the log level to catch more specific
	// or more high level logs.
	LogLevelKey = "LOG_LEVEL"
	// KdfLabelKey is the key to customize the HKDF info label. Changing it
	// changes every generated mnemonic, the default must be kept to reproduce
	// previously generated phrases.
	KdfLabelKey = "KDF_LABEL"
	// NoColorKey is the key to disable ANSI colors in the terminal output.
	NoColorKey = "NO_COLOR"
	// WordsPerRowKey is the key to customize how many words are printed on
	// every row of the mnemonic frame.
	WordsPerRowKey = "WORDS_PER_ROW"
	// DumpMetricsKey is the key to print the collected pipeline stats on
	// stderr at the end of every run.
	DumpMetricsKey = "DUMP_METRICS"

	maxWordsPerRow = 24
	maxLogLevel    = 6
)

var (
	vip *viper.Viper

	defaultLogLevel    = 4
	defaultKdfLabel    = kdf.DefaultLabel
	defaultWordsPerRow = 6
)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("SEEDGEN")
	vip.AutomaticEnv()

	vip.SetDefault(LogLevelKey, defaultLogLevel)
	vip.SetDefault(KdfLabelKey, defaultKdfLabel)
	vip.SetDefault(NoColorKey, false)
	vip.SetDefault(WordsPerRowKey, defaultWordsPerRow)
	vip.SetDefault(DumpMetricsKey, false)

	if err := Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}
}

// Validate checks the current configuration.
func Validate() error {
	if label := GetString(KdfLabelKey); len(label) <= 0 {
		return fmt.Errorf("kdf label must not be null")
	}

	logLevel := GetInt(LogLevelKey)
	if logLevel < 0 || logLevel > maxLogLevel {
		return fmt.Errorf("log level must be in range [0, %d]", maxLogLevel)
	}

	wordsPerRow := GetInt(WordsPerRowKey)
	if wordsPerRow < 1 || wordsPerRow > maxWordsPerRow {
		return fmt.Errorf("words per row must be in range [1, %d]", maxWordsPerRow)
	}

	return nil
}

// Settings returns the effective configuration, keyed by name.
func Settings() map[string]interface{} {
	return map[string]interface{}{
		LogLevelKey:    GetInt(LogLevelKey),
		KdfLabelKey:    GetString(KdfLabelKey),
		NoColorKey:     GetBool(NoColorKey),
		WordsPerRowKey: GetInt(WordsPerRowKey),
		DumpMetricsKey: GetBool(DumpMetricsKey),
	}
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func Set(key string, val interface{}) {
	vip.Set(key, val)
}

func Unset(key string) {
	vip.Set(key, nil)
}

func IsSet(key string) bool {
	return vip.IsSet(key)
}
