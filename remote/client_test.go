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

package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"skeapi/merror"
	"skeapi/params"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest(t *testing.T) params.Request {
	store := params.NewStore("json").Login(params.NewCredentials("key", "user"))
	req, err := params.Build(store, params.CorpusArg("bnc2"))
	require.NoError(t, err)
	return req
}

func TestClientGetSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/corp_info", r.URL.Path)
		assert.Equal(t, "bnc2", r.URL.Query().Get("corpname"))
		assert.Equal(t, "key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name": "BNC"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", 0, 0)
	resp, err := client.Get(context.Background(), "/corp_info", testRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "BNC", resp.Data["name"])
	assert.Equal(t, `{"name": "BNC"}`, string(resp.Body))
	assert.Contains(t, resp.URL, "corpname=bnc2")
}

func TestClientGetBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, 0)
	_, err := client.Get(context.Background(), "/corp_info", testRequest(t))
	var tErr merror.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, http.StatusForbidden, tErr.Status)
}

func TestClientGetEmbeddedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Corpus \"foo\" not available"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, 0)
	_, err := client.Get(context.Background(), "/corp_info", testRequest(t))
	var tErr merror.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, http.StatusOK, tErr.Status)
	assert.Equal(t, `Corpus "foo" not available`, tErr.Msg)
	assert.Equal(t, merror.KindTransport, merror.KindOf(err))
}

func TestClientGetInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html></html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, 0)
	_, err := client.Get(context.Background(), "/wsketch", testRequest(t))
	assert.Equal(t, merror.KindTransport, merror.KindOf(err))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "foo", errorMessage("foo"))
	assert.Equal(t, "server error occurred, no data retrieved", errorMessage(""))
	assert.Equal(t, "server error occurred, no data retrieved", errorMessage(nil))
	assert.Equal(t, "12", errorMessage(12))
}

func TestClientGetConnectionFailureHidesAPIKey(t *testing.T) {
	store := params.NewStore("json").Login(params.NewCredentials("SECRETKEY123", "user"))
	req, err := params.Build(store, params.CorpusArg("bnc2"))
	require.NoError(t, err)

	client := NewClient("http://127.0.0.1:1", 1, 1)
	_, err = client.Get(context.Background(), "/corp_info", req)
	var tErr merror.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.NotContains(t, err.Error(), "SECRETKEY123")
	assert.NotContains(t, tErr.URL, "SECRETKEY123")
	assert.Equal(t, "http://127.0.0.1:1/corp_info", tErr.URL)
	assert.Contains(t, tErr.Msg, "http://127.0.0.1:1/corp_info")
}

func TestClientGetBadStatusHidesAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0, 0)
	_, err := client.Get(context.Background(), "/corp_info", testRequest(t))
	var tErr merror.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, srv.URL+"/corp_info", tErr.URL)
}
