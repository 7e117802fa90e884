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

package main

import (
	"net/http"
	"net/http/httptest"
	"skeapi/cnf"
	"skeapi/params"
	"skeapi/remote"
	"skeapi/sketch"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestServer(conf *cnf.Conf) *apiServer {
	return &apiServer{
		conf: conf,
		client: sketch.NewClient(
			remote.NewClient("http://localhost:1", 1, 1),
			params.NewStore("json"),
		),
		version: VersionInfo{Version: "1.0.0"},
	}
}

func TestAuthRequired(t *testing.T) {
	engine := newTestServer(&cnf.Conf{
		AuthHeaderName: "X-Api-Key",
		AuthTokens:     []string{"secret"},
	}).newEngine()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/corpus-info/bnc2", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// credentials are missing in the store so the request
	// never leaves the gateway
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/corpus-info/bnc2", nil)
	req.Header.Set("X-Api-Key", "secret")
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServerInfo(t *testing.T) {
	engine := newTestServer(&cnf.Conf{}).newEngine()
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1.0.0")
}

func TestCORSAllowedOrigin(t *testing.T) {
	engine := newTestServer(&cnf.Conf{
		CorsAllowedOrigins: []string{"https://example.com"},
	}).newEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/corpus-info/bnc2", nil)
	req.Header.Set("Origin", "https://example.com")
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/corpus-info/bnc2", nil)
	req.Header.Set("Origin", "https://foo.org")
	engine.ServeHTTP(w, req)
	assert.Equal(t, "", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCleanVersionInfo(t *testing.T) {
	assert.Equal(t, "1.2.3", cleanVersionInfo("'v1.2.3'"))
}
