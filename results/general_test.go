// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
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

package results

import (
	"context"
	"encoding/json"
	"skeapi/params"
	"skeapi/remote"
	"skeapi/sketch"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticRequester struct {
	body string
}

func (sr staticRequester) Get(ctx context.Context, method string, req params.Request) (*remote.Response, error) {
	return &remote.Response{URL: "http://localhost" + method, Body: []byte(sr.body)}, nil
}

func TestNormRound(t *testing.T) {
	assert.Equal(t, 1.235, NormRound(1.23456))
	assert.Equal(t, 0.0, NormRound(0.0001))
}

func TestWordSketchMarshal(t *testing.T) {
	client := sketch.NewClient(
		staticRequester{body: `{"lemma":"large","lpos":"-x","lpos_dict":{"adjective":"-j"},` +
			`"corp_full_name":"BNC","freq":10,"relfreq":1.5,"Gramrels":[` +
			`{"name":"%w things","Words":[{"word":"a","score":1.23456,"count":1,"seek":1},` +
			`{"word":"b","score":2,"count":2,"seek":2,"cm":"b-x"}]}]}`},
		params.NewStore("json").Login(params.NewCredentials("key", "user")).WithDefaultCorpus("bnc2"),
	)
	ws, err := client.WordSketch(context.Background())
	require.NoError(t, err)
	data, err := json.Marshal(&WordSketch{Data: ws})
	require.NoError(t, err)

	var ans WordSketchResponse
	require.NoError(t, json.Unmarshal(data, &ans))
	assert.Equal(t, "large", ans.Lemma)
	assert.Equal(t, "", ans.POS)
	assert.Contains(t, ans.Error, "unknown lempos code")
	require.Len(t, ans.Gramrels, 1)
	assert.Equal(t, "large things", ans.Gramrels[0].Name)
	assert.Equal(t, 1.235, ans.Gramrels[0].Collocates[0].Score)
	assert.Equal(t, "b-x", ans.Gramrels[0].Collocates[1].Example)

	_, extracted := ws.Gramrels()
	assert.False(t, extracted)
}

func TestExamplesAlwaysAsList(t *testing.T) {
	data, err := json.Marshal(Examples{Seek: "1"}.AlwaysAsList())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"lines":[]`)
}
