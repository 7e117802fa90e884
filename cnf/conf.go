// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SKEAPI.
//
//  SKEAPI is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SKEAPI is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SKEAPI.  If not, see <https://www.gnu.org/licenses/>.

package cnf

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"skeapi/params"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltBaseURL                = "https://api.sketchengine.eu/bonito/run.cgi"
	dfltFormat                 = "json"
	dfltRequestTimeoutSecs     = 30
	dfltIdleConnTimeoutSecs    = 60
	dfltServerWriteTimeoutSecs = 90
	dfltServerReadTimeoutSecs  = 30
	dfltListenPort             = 8090

	EnvAPIKey   = "SKEAPI_API_KEY"
	EnvUsername = "SKEAPI_USERNAME"
)

// Conf is a global configuration of the app
type Conf struct {

	// BaseURL is the URL all the API methods (e.g. `/wsketch`)
	// are appended to
	BaseURL string `json:"baseUrl"`

	// Format is the requested response format (`format` argument)
	Format string `json:"format"`

	APIKey        string `json:"apiKey"`
	Username      string `json:"username"`
	DefaultCorpus string `json:"defaultCorpus"`

	RequestTimeoutSecs  int `json:"requestTimeoutSecs"`
	IdleConnTimeoutSecs int `json:"idleConnTimeoutSecs"`

	ListenAddress          string           `json:"listenAddress"`
	ListenPort             int              `json:"listenPort"`
	ServerReadTimeoutSecs  int              `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int              `json:"serverWriteTimeoutSecs"`
	CorsAllowedOrigins     []string         `json:"corsAllowedOrigins"`
	AuthHeaderName         string           `json:"authHeaderName"`
	AuthTokens             []string         `json:"authTokens"`
	LogFile                string           `json:"logFile"`
	LogLevel               logging.LogLevel `json:"logLevel"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// InitialStore creates default request parameters
// based on the configured credentials and corpus.
func (conf *Conf) InitialStore() params.Store {
	ans := params.NewStore(conf.Format)
	if conf.APIKey != "" || conf.Username != "" {
		ans = ans.Login(params.NewCredentials(conf.APIKey, conf.Username))
	}
	if conf.DefaultCorpus != "" {
		ans = ans.WithDefaultCorpus(conf.DefaultCorpus)
	}
	return ans
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

func LoadConfig(path string) (*Conf, error) {
	if path == "" {
		return nil, fmt.Errorf("cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	var conf Conf
	conf.srcPath = path
	if err := json.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	return &conf, nil
}

// ApplyEnv overrides credentials with values
// from environment variables (if defined).
func ApplyEnv(conf *Conf) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		conf.APIKey = v
		log.Info().Str("variable", EnvAPIKey).Msg("using API key from environment")
	}
	if v := os.Getenv(EnvUsername); v != "" {
		conf.Username = v
		log.Info().Str("variable", EnvUsername).Msg("using username from environment")
	}
}

func ValidateAndDefaults(conf *Conf) error {
	if conf.BaseURL == "" {
		conf.BaseURL = dfltBaseURL
		log.Warn().Str("baseUrl", dfltBaseURL).Msg("baseUrl not specified, using default")
	}
	u, err := url.Parse(conf.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid baseUrl: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid baseUrl: unsupported scheme `%s`", u.Scheme)
	}
	if conf.Format == "" {
		conf.Format = dfltFormat
		log.Warn().Msgf("format not specified, using default: %s", dfltFormat)
	}
	if conf.RequestTimeoutSecs == 0 {
		conf.RequestTimeoutSecs = dfltRequestTimeoutSecs
		log.Warn().Msgf(
			"requestTimeoutSecs not specified, using default: %d",
			dfltRequestTimeoutSecs,
		)
	}
	if conf.IdleConnTimeoutSecs == 0 {
		conf.IdleConnTimeoutSecs = dfltIdleConnTimeoutSecs
	}
	if conf.ListenPort == 0 {
		conf.ListenPort = dfltListenPort
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
	}
	if conf.APIKey == "" || conf.Username == "" {
		log.Warn().Msg("credentials not configured, each request will have to provide them")
	}
	if len(conf.AuthTokens) > 0 && conf.AuthHeaderName == "" {
		return fmt.Errorf("authTokens specified but authHeaderName is empty")
	}
	return nil
}
