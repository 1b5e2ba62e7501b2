package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for the client.
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Learner LearnerConfig `mapstructure:"learner"`
	Speech  SpeechConfig  `mapstructure:"speech"`
	Log     LogConfig     `mapstructure:"log"`
}

type BackendConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type LearnerConfig struct {
	Level          string `mapstructure:"level"`
	NativeLanguage string `mapstructure:"native_language"`
}

type SpeechConfig struct {
	// BaseSpeed is the user-configurable playback speed that listening
	// exercises scale by difficulty.
	BaseSpeed float64 `mapstructure:"base_speed"`
	Voice     string  `mapstructure:"voice"`
	Language  string  `mapstructure:"language"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from lingo-tutor.yaml (working directory or
// ~/.config/lingo-tutor) and LINGO_* environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("lingo-tutor")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "lingo-tutor"))
	}

	v.SetDefault("backend.base_url", "http://localhost:5000")
	v.SetDefault("backend.timeout_seconds", 60)
	v.SetDefault("learner.level", "A1")
	v.SetDefault("learner.native_language", "vi")
	v.SetDefault("speech.base_speed", 1.0)
	v.SetDefault("speech.voice", "us-female")
	v.SetDefault("speech.language", "en-US")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("LINGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

var sampleWordsMemCache []SampleWord

// SampleWord is a bundled fallback word for pronunciation practice, used when
// the learner has no vocabulary of their own yet.
type SampleWord struct {
	Word      string `yaml:"word"`
	Phonetic  string `yaml:"phonetic"`
	MeaningVi string `yaml:"meaning_vi"`
}

type sampleWordsFile struct {
	SampleWords []SampleWord `yaml:"sample_words"`
}

func GetAssetsDir() string {
	if dir := os.Getenv("LINGO_ASSETS_DIR"); dir != "" {
		return dir
	}
	return "assets"
}

// LoadSampleWords reads the bundled sample word list once and caches it for
// the rest of the process.
func LoadSampleWords() ([]SampleWord, error) {
	if sampleWordsMemCache != nil {
		return sampleWordsMemCache, nil
	}

	path := filepath.Join(GetAssetsDir(), "sample_words.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample words: %w", err)
	}

	var parsed sampleWordsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse sample words: %w", err)
	}

	sampleWordsMemCache = parsed.SampleWords
	return sampleWordsMemCache, nil
}
