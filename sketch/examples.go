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
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

var paragraphMarkers = strings.NewReplacer("<p>", "", "</p>", "")

type concPart struct {
	Str string `json:"str"`
}

type concLine struct {
	Left  []concPart `json:"Left"`
	Kwic  []concPart `json:"Kwic"`
	Right []concPart `json:"Right"`
}

func (line concLine) flatten() string {
	var ans strings.Builder
	for _, parts := range [][]concPart{line.Left, line.Kwic, line.Right} {
		for _, p := range parts {
			ans.WriteString(p.Str)
		}
	}
	return paragraphMarkers.Replace(ans.String())
}

type viewResponse struct {
	Lines    *[]concLine `json:"Lines"`
	NextLink string      `json:"nextlink"`
}

// nextPageCursor extracts the `from` value from a `nextlink`
// (i.e. the part following the first `=`, up to the next one).
func nextPageCursor(nextLink string) (string, bool) {
	items := strings.Split(nextLink, "=")
	if len(items) < 2 || items[1] == "" {
		return "", false
	}
	return items[1], true
}

// Examples fetches `pages` pages of concordance lines containing
// the collocate and returns them as plain text sentences.
// Pages are requested sequentially, each one using a cursor
// found in the previous response. In case the previous response
// provides no cursor, the loop ends early with what has been
// fetched so far. Any failed request fails the whole operation.
func (c *Collocate) Examples(ctx context.Context, pages, pageSize int) ([]string, error) {
	if pages <= 0 {
		return nil, merror.ValueError{Msg: fmt.Sprintf("invalid number of pages %d", pages)}
	}
	if err := c.SetPageSize(pageSize); err != nil {
		return nil, err
	}
	req, err := params.Build(
		c.client.store,
		params.CorpusArg(c.corpname),
		params.ParamsArg(map[string]string{
			"q":        c.ConcQuery(),
			"pagesize": strconv.Itoa(c.pageSize),
			"viewmode": c.viewMode,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get examples: %w", err)
	}
	var ans []string
	for i := 0; i < pages; i++ {
		resp, err := c.client.requester.Get(ctx, MethodView, req)
		if err != nil {
			return nil, fmt.Errorf("failed to get examples (page %d): %w", i+1, err)
		}
		var data viewResponse
		if err := sonic.Unmarshal(resp.Body, &data); err != nil {
			return nil, merror.MappingError{Field: "*", Msg: err.Error()}
		}
		if data.Lines == nil {
			return nil, fmt.Errorf(
				"failed to get examples (page %d): %w", i+1, merror.MappingError{Field: "Lines"})
		}
		for _, line := range *data.Lines {
			ans = append(ans, line.flatten())
		}
		if i == pages-1 {
			break
		}
		cursor, ok := nextPageCursor(data.NextLink)
		if !ok {
			log.Debug().
				Int("page", i+1).
				Int("requestedPages", pages).
				Msg("no next page available, stopping")
			break
		}
		req = req.With("from", cursor)
	}
	return ans, nil
}
