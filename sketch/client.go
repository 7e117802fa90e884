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

// Package sketch maps Sketch Engine API responses (corpus info,
// word sketches, concordance views) to typed values.
package sketch

import (
	"context"
	"skeapi/params"
	"skeapi/remote"
)

const (
	MethodCorpInfo   = "/corp_info"
	MethodWordSketch = "/wsketch"
	MethodView       = "/view"
)

// Client binds a requester with default request parameters.
// All the values created by a client (corpora, word sketches,
// collocates) use its store when building their requests.
type Client struct {
	requester remote.Requester
	store     params.Store
}

func (c *Client) Store() params.Store {
	return c.store
}

// WithStore returns a new client sharing the same requester
// but using a different store.
func (c *Client) WithStore(store params.Store) *Client {
	return &Client{requester: c.requester, store: store}
}

func (c *Client) call(ctx context.Context, method string, args ...params.Arg) (*remote.Response, params.Request, error) {
	req, err := params.Build(c.store, args...)
	if err != nil {
		return nil, req, err
	}
	resp, err := c.requester.Get(ctx, method, req)
	return resp, req, err
}

// Corpus creates a corpus handle. No request is sent until
// corpus information is needed.
func (c *Client) Corpus(corpname string) *Corpus {
	return &Corpus{client: c, corpname: corpname}
}

// SeekCollocate creates a collocate known only by its seek token
// (e.g. obtained from an earlier word sketch). Such a collocate
// is only useful for fetching examples.
func (c *Client) SeekCollocate(corpname, seek string) *Collocate {
	var (
		word  string
		score float64
		count int64
	)
	token := seekToken(seek)
	return newCollocate(
		c, corpname, "", rawWord{Word: &word, Score: &score, Count: &count, Seek: &token})
}

func NewClient(requester remote.Requester, store params.Store) *Client {
	return &Client{requester: requester, store: store}
}
