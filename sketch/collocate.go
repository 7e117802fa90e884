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
	"bytes"
	"fmt"
	"skeapi/merror"
	"strconv"

	"github.com/czcorpus/cnc-gokit/collections"
)

const (
	ViewModeKWIC = "kwic"
	ViewModeSen  = "sen"

	dfltPageSize = 100
)

var viewModes = []string{ViewModeKWIC, ViewModeSen}

// seekToken is an opaque value the API provides either
// as a number or as a string. We keep its textual form.
type seekToken string

func (st *seekToken) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		v, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid seek value: %w", err)
		}
		*st = seekToken(v)
		return nil
	}
	if string(data) == "null" {
		*st = ""
		return nil
	}
	*st = seekToken(data)
	return nil
}

type rawWord struct {
	Word   *string   `json:"word"`
	Name   *string   `json:"name"`
	Score  *float64   `json:"score"`
	Count  *int64     `json:"count"`
	Seek   *seekToken `json:"seek"`
	CM     *string    `json:"cm"`
	Lempos *string    `json:"lempos"`
}

// validate checks the fields a Collocate cannot do without.
// The word itself may come either as `word` or as `name`.
func (w rawWord) validate() error {
	switch {
	case w.Word == nil && w.Name == nil:
		return merror.MappingError{Field: "word"}
	case w.Score == nil:
		return merror.MappingError{Field: "score"}
	case w.Count == nil:
		return merror.MappingError{Field: "count"}
	case w.Seek == nil || *w.Seek == "":
		return merror.MappingError{Field: "seek"}
	}
	return nil
}

// Collocate is a single word of a grammatical relation
type Collocate struct {
	client      *Client
	corpname    string
	gramrelName string
	word        string
	score       float64
	count       int64
	example     *string
	lempos      *string
	seek        string
	pageSize    int
	viewMode    string
}

// Word returns the collocate word. For some relations (e.g.
// coordination) the API provides `name` instead of `word`.
func (c *Collocate) Word() string {
	return c.word
}

func (c *Collocate) Score() float64 {
	return c.score
}

func (c *Collocate) Count() int64 {
	return c.count
}

// Example returns the context marker (`cm`) if provided
func (c *Collocate) Example() (string, bool) {
	if c.example == nil {
		return "", false
	}
	return *c.example, true
}

func (c *Collocate) Lempos() (string, bool) {
	if c.lempos == nil {
		return "", false
	}
	return *c.lempos, true
}

func (c *Collocate) Seek() string {
	return c.seek
}

func (c *Collocate) GramrelName() string {
	return c.gramrelName
}

// ConcQuery returns a concordance query locating
// the collocate's occurrences.
func (c *Collocate) ConcQuery() string {
	return fmt.Sprintf("q[ws(2,%s)]", c.seek)
}

func (c *Collocate) PageSize() int {
	return c.pageSize
}

func (c *Collocate) SetPageSize(pageSize int) error {
	if pageSize <= 0 {
		return merror.ValueError{Msg: fmt.Sprintf("invalid page size %d", pageSize)}
	}
	c.pageSize = pageSize
	return nil
}

func (c *Collocate) ViewMode() string {
	return c.viewMode
}

// SetViewMode sets either `kwic` or `sen` view mode
func (c *Collocate) SetViewMode(viewMode string) error {
	if !collections.SliceContains(viewModes, viewMode) {
		return merror.ValueError{
			Msg: fmt.Sprintf("invalid view mode `%s` (expected `kwic` or `sen`)", viewMode)}
	}
	c.viewMode = viewMode
	return nil
}

func (c *Collocate) String() string {
	return fmt.Sprintf(
		"Collocate: \"%s\". Score: %.2f. Count: %d.\nGrammatical relation to the node: %s.",
		c.word, c.score, c.count, c.gramrelName,
	)
}

// newCollocate expects data already checked by rawWord.validate
func newCollocate(client *Client, corpname, gramrelName string, data rawWord) *Collocate {
	ans := &Collocate{
		client:      client,
		corpname:    corpname,
		gramrelName: gramrelName,
		score:       *data.Score,
		count:       *data.Count,
		example:     data.CM,
		lempos:      data.Lempos,
		seek:        string(*data.Seek),
		pageSize:    dfltPageSize,
		viewMode:    ViewModeSen,
	}
	if data.Word != nil {
		ans.word = *data.Word
	} else if data.Name != nil {
		ans.word = *data.Name
	}
	return ans
}
