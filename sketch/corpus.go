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

package sketch

import (
	"context"
	"fmt"
	"skeapi/merror"
	"skeapi/params"
	"strconv"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

type SizesInfo map[string]int64

// CorpusInfo contains corpus metadata as provided by
// the `corp_info` API method
type CorpusInfo struct {
	Name          string
	Description   string
	Documentation string
	Encoding      string

	// Lempos maps a part of speech label to its lempos suffix
	// (e.g. `noun` => `-n`)
	Lempos map[string]string

	Size SizesInfo
}

type corpInfoResponse struct {
	Name     *string        `json:"name"`
	Info     *string        `json:"info"`
	InfoHref *string        `json:"infohref"`
	Encoding *string        `json:"encoding"`
	LposList [][]string     `json:"lposlist"`
	Sizes    map[string]any `json:"sizes"`
}

func (resp *corpInfoResponse) toCorpusInfo() (*CorpusInfo, error) {
	for _, fld := range []struct {
		name string
		val  *string
	}{
		{"name", resp.Name},
		{"info", resp.Info},
		{"infohref", resp.InfoHref},
		{"encoding", resp.Encoding},
	} {
		if fld.val == nil {
			return nil, merror.MappingError{Field: fld.name}
		}
	}
	if resp.LposList == nil {
		return nil, merror.MappingError{Field: "lposlist"}
	}
	if resp.Sizes == nil {
		return nil, merror.MappingError{Field: "sizes"}
	}
	ans := &CorpusInfo{
		Name:          *resp.Name,
		Description:   *resp.Info,
		Documentation: *resp.InfoHref,
		Encoding:      *resp.Encoding,
		Lempos:        make(map[string]string, len(resp.LposList)),
		Size:          make(SizesInfo, len(resp.Sizes)),
	}
	for i, pair := range resp.LposList {
		if len(pair) != 2 {
			return nil, merror.MappingError{
				Field: "lposlist",
				Msg:   fmt.Sprintf("item %d is not a pair", i),
			}
		}
		ans.Lempos[pair[0]] = pair[1]
	}
	for k, v := range resp.Sizes {
		size, ok := toInt64(v)
		if !ok {
			return nil, merror.MappingError{
				Field: "sizes",
				Msg:   fmt.Sprintf("invalid value of `%s`", k),
			}
		}
		ans.Size[k] = size
	}
	return ans, nil
}

// toInt64 accepts both JSON numbers and numeric strings
// as the API is not consistent in this regard.
func toInt64(v any) (int64, bool) {
	switch tv := v.(type) {
	case float64:
		return int64(tv), true
	case int64:
		return tv, true
	case string:
		ans, err := strconv.ParseInt(tv, 10, 64)
		return ans, err == nil
	}
	return 0, false
}

// Corpus is a handle for a corpus available via the API.
// Corpus information is loaded on first access and then kept
// for the whole lifetime of the value.
type Corpus struct {
	client   *Client
	corpname string
	mu       sync.Mutex
	info     *CorpusInfo
	rawInfo  map[string]any
}

func (c *Corpus) Corpname() string {
	return c.corpname
}

// Arg allows using the corpus as a request argument
func (c *Corpus) Arg() params.Arg {
	return params.CorpusArg(c.corpname)
}

// SetAsDefault returns the client's store with the corpus
// set as the default one.
func (c *Corpus) SetAsDefault() params.Store {
	return c.client.store.WithDefaultCorpus(c.corpname)
}

// Info returns corpus information. Only the first successful
// call sends a request.
//
// Note: in case the client's store defines a default corpus,
// the request is sent for that corpus.
func (c *Corpus) Info(ctx context.Context) (*CorpusInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.info != nil {
		return c.info, nil
	}
	resp, _, err := c.client.call(ctx, MethodCorpInfo, c.Arg())
	if err != nil {
		return nil, fmt.Errorf("failed to get info for corpus %s: %w", c.corpname, err)
	}
	var data corpInfoResponse
	if err := sonic.Unmarshal(resp.Body, &data); err != nil {
		return nil, merror.MappingError{Field: "*", Msg: err.Error()}
	}
	info, err := data.toCorpusInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get info for corpus %s: %w", c.corpname, err)
	}
	c.info = info
	c.rawInfo = resp.Data
	log.Debug().Str("corpname", c.corpname).Msg("corpus info loaded")
	return c.info, nil
}

// InfoRaw returns the decoded response of the corpus info
// request. Before the info is loaded, nil is returned.
func (c *Corpus) InfoRaw() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rawInfo
}

func (c *Corpus) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.info != nil {
		return c.info.Description
	}
	return c.corpname
}
