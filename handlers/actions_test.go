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

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"skeapi/merror"
	"skeapi/params"
	"skeapi/remote"
	"skeapi/sketch"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case sketch.MethodCorpInfo:
			w.Write([]byte(`{"name":"BNC","info":"British National Corpus","infohref":"http://x",` +
				`"encoding":"utf-8","lposlist":[["noun","-n"]],"sizes":{"tokens":100}}`))
		case sketch.MethodWordSketch:
			assert.Equal(t, "bnc2", r.URL.Query().Get("corpname"))
			w.Write([]byte(`{"lemma":"large","lpos":"-j","lpos_dict":{"adjective":"-j"},` +
				`"corp_full_name":"BNC","freq":10,"relfreq":1.23456,"Gramrels":[` +
				`{"name":"modifies %w","Words":[{"word":"a","score":1,"count":1,"seek":1},` +
				`{"word":"b","score":2,"count":2,"seek":2}]}]}`))
		case sketch.MethodView:
			w.Write([]byte(`{"Lines":[{"Left":[{"str":"a "}],"Kwic":[{"str":"large"}],` +
				`"Right":[{"str":" b"}]}],"nextlink":"view?from=2"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestEngine(upstreamURL string, store params.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	client := sketch.NewClient(remote.NewClient(upstreamURL, 5, 5), store)
	actions := NewActions(client)
	engine := gin.New()
	engine.GET("/corpus-info/:corpusId", actions.CorpusInfo)
	engine.GET("/word-sketch/:corpusId", actions.WordSketch)
	engine.GET("/examples/:corpusId", actions.Examples)
	return engine
}

func testStore() params.Store {
	return params.NewStore("json").Login(params.NewCredentials("key", "user"))
}

func TestCorpusInfoAction(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	engine := newTestEngine(upstream.URL, testStore())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/corpus-info/bnc2", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var ans map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, "BNC", ans["name"])
	assert.Equal(t, "bnc2", ans["corpname"])
}

func TestWordSketchAction(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	engine := newTestEngine(upstream.URL, testStore().WithDefaultCorpus("other"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(
		w, httptest.NewRequest(http.MethodGet, "/word-sketch/bnc2?lemma=large&lpos=-j&maxItems=1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var ans struct {
		POS      string  `json:"pos"`
		RelFreq  float64 `json:"relFreq"`
		Gramrels []struct {
			Name       string `json:"name"`
			Collocates []struct {
				Word      string `json:"word"`
				ConcQuery string `json:"concQuery"`
			} `json:"collocates"`
		} `json:"gramrels"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, "adjective", ans.POS)
	assert.Equal(t, 1.235, ans.RelFreq)
	require.Len(t, ans.Gramrels, 1)
	assert.Equal(t, "modifies large", ans.Gramrels[0].Name)
	require.Len(t, ans.Gramrels[0].Collocates, 1)
	assert.Equal(t, "q[ws(2,1)]", ans.Gramrels[0].Collocates[0].ConcQuery)
}

func TestWordSketchActionMissingLemma(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	engine := newTestEngine(upstream.URL, testStore())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/word-sketch/bnc2", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExamplesAction(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	engine := newTestEngine(upstream.URL, testStore())

	w := httptest.NewRecorder()
	engine.ServeHTTP(
		w, httptest.NewRequest(http.MethodGet, "/examples/bnc2?seek=1234&pages=2&pageSize=1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var ans struct {
		ConcQuery string   `json:"concQuery"`
		Lines     []string `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, "q[ws(2,1234)]", ans.ConcQuery)
	assert.Equal(t, []string{"a large b", "a large b"}, ans.Lines)
}

func TestExamplesActionInvalidViewMode(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	engine := newTestEngine(upstream.URL, testStore())

	w := httptest.NewRecorder()
	engine.ServeHTTP(
		w, httptest.NewRequest(http.MethodGet, "/examples/bnc2?seek=1234&viewmode=foo", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMissingCredentials(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	engine := newTestEngine(upstream.URL, params.NewStore("json"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/corpus-info/bnc2", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, errorStatus(merror.TransportError{Status: 500}))
	assert.Equal(t, http.StatusInternalServerError, errorStatus(merror.MappingError{Field: "lemma"}))
	assert.Equal(t, http.StatusBadRequest, errorStatus(merror.ValidationError{Missing: []string{"api_key"}}))
}

func TestCorpusInfoActionUnreachableUpstream(t *testing.T) {
	store := params.NewStore("json").Login(params.NewCredentials("SECRETKEY123", "user"))
	engine := newTestEngine("http://127.0.0.1:1", store)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/corpus-info/bnc2", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "SECRETKEY123")
	assert.Contains(t, w.Body.String(), "/corp_info")
}
