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
	"math"
	"skeapi/merror"
	"skeapi/params"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

const (
	lemmaPlaceholder = "%w"
)

type rawGramrel struct {
	Name  string    `json:"name"`
	Words []rawWord `json:"Words"`
}

type wsketchResponse struct {
	Lemma        *string           `json:"lemma"`
	CorpFullName *string           `json:"corp_full_name"`
	Freq         *int64            `json:"freq"`
	RelFreq      *float64          `json:"relfreq"`
	LposDict     map[string]string `json:"lpos_dict"`
	Lpos         *string           `json:"lpos"`
	Gramrels     []rawGramrel      `json:"Gramrels"`
}

func (resp *wsketchResponse) validate() error {
	switch {
	case resp.Lemma == nil:
		return merror.MappingError{Field: "lemma"}
	case resp.CorpFullName == nil:
		return merror.MappingError{Field: "corp_full_name"}
	case resp.Freq == nil:
		return merror.MappingError{Field: "freq"}
	case resp.RelFreq == nil:
		return merror.MappingError{Field: "relfreq"}
	case resp.LposDict == nil:
		return merror.MappingError{Field: "lpos_dict"}
	case resp.Lpos == nil:
		return merror.MappingError{Field: "lpos"}
	case resp.Gramrels == nil:
		return merror.MappingError{Field: "Gramrels"}
	}
	for _, rg := range resp.Gramrels {
		if rg.Words == nil {
			return fmt.Errorf("relation `%s`: %w", rg.Name, merror.MappingError{Field: "Words"})
		}
		for i, w := range rg.Words {
			if err := w.validate(); err != nil {
				return fmt.Errorf("relation `%s`, item %d: %w", rg.Name, i, err)
			}
		}
	}
	return nil
}

// ----

// GramrelGroup contains collocates of a single grammatical
// relation. Collocates are kept in the order provided by the API.
type GramrelGroup struct {
	Name  string
	words []string
	items map[string]*Collocate
}

func (g *GramrelGroup) set(coll *Collocate) {
	if _, ok := g.items[coll.Word()]; !ok {
		g.words = append(g.words, coll.Word())
	}
	g.items[coll.Word()] = coll
}

func (g *GramrelGroup) Words() []string {
	ans := make([]string, len(g.words))
	copy(ans, g.words)
	return ans
}

func (g *GramrelGroup) Get(word string) (*Collocate, bool) {
	v, ok := g.items[word]
	return v, ok
}

func (g *GramrelGroup) Collocates() []*Collocate {
	ans := make([]*Collocate, len(g.words))
	for i, w := range g.words {
		ans[i] = g.items[w]
	}
	return ans
}

func (g *GramrelGroup) Len() int {
	return len(g.words)
}

// Gramrels is an ordered mapping of grammatical relation names
// to their collocates.
type Gramrels struct {
	names  []string
	groups map[string]*GramrelGroup
}

func (gr *Gramrels) Names() []string {
	ans := make([]string, len(gr.names))
	copy(ans, gr.names)
	return ans
}

func (gr *Gramrels) Get(name string) (*GramrelGroup, bool) {
	v, ok := gr.groups[name]
	return v, ok
}

func (gr *Gramrels) Groups() []*GramrelGroup {
	ans := make([]*GramrelGroup, len(gr.names))
	for i, n := range gr.names {
		ans[i] = gr.groups[n]
	}
	return ans
}

// ----

// WordSketch is a result of the `wsketch` API method
type WordSketch struct {
	client      *Client
	url         string
	request     params.Request
	lemma       string
	lpos        string
	lposDict    map[string]string
	corpusName  string
	freq        int64
	relFreq     float64
	rawGramrels []rawGramrel
	gramrels    *Gramrels
}

func (ws *WordSketch) Lemma() string {
	return ws.lemma
}

// Lpos returns the lempos code of the lemma as returned
// by the API
func (ws *WordSketch) Lpos() string {
	return ws.lpos
}

func (ws *WordSketch) LposDict() map[string]string {
	ans := make(map[string]string, len(ws.lposDict))
	for k, v := range ws.lposDict {
		ans[k] = v
	}
	return ans
}

// POS returns a part of speech label matching Lpos().
// An unknown code produces merror.MappingError.
func (ws *WordSketch) POS() (string, error) {
	inv := make(map[string]string, len(ws.lposDict))
	for k, v := range ws.lposDict {
		inv[v] = k
	}
	ans, ok := inv[ws.lpos]
	if !ok {
		return "", merror.MappingError{
			Field: "lpos",
			Msg:   fmt.Sprintf("unknown lempos code `%s`", ws.lpos),
		}
	}
	return ans, nil
}

// CorpusName returns a full (human readable) corpus name
func (ws *WordSketch) CorpusName() string {
	return ws.corpusName
}

func (ws *WordSketch) FrequencyRaw() int64 {
	return ws.freq
}

// FrequencyRel returns the instances per million
func (ws *WordSketch) FrequencyRel() float64 {
	return ws.relFreq
}

func (ws *WordSketch) NumGramrels() int {
	return len(ws.rawGramrels)
}

// URL returns the full request URL. It contains the API key.
func (ws *WordSketch) URL() string {
	return ws.url
}

func (ws *WordSketch) Request() params.Request {
	return ws.request
}

// BuildGramrels converts raw grammatical relations into
// the Gramrels mapping without storing it in ws.
func (ws *WordSketch) BuildGramrels() *Gramrels {
	ans := &Gramrels{
		names:  make([]string, 0, len(ws.rawGramrels)),
		groups: make(map[string]*GramrelGroup),
	}
	corpname := ws.request.Get(params.KeyCorpname)
	for _, rg := range ws.rawGramrels {
		name := strings.ReplaceAll(rg.Name, lemmaPlaceholder, ws.lemma)
		if _, ok := ans.groups[name]; !ok {
			ans.names = append(ans.names, name)
		}
		group := &GramrelGroup{
			Name:  name,
			words: make([]string, 0, len(rg.Words)),
			items: make(map[string]*Collocate),
		}
		for _, w := range rg.Words {
			group.set(newCollocate(ws.client, corpname, name, w))
		}
		ans.groups[name] = group
	}
	return ans
}

// ExtractGramrels builds the Gramrels mapping and keeps it
// for Gramrels and GramrelNames. Calling the method again
// produces an equal structure (the raw data are kept untouched).
func (ws *WordSketch) ExtractGramrels() *Gramrels {
	ans := ws.BuildGramrels()
	ws.gramrels = ans
	log.Debug().
		Str("lemma", ws.lemma).
		Int("numGramrels", len(ans.names)).
		Msg("grammatical relations extracted")
	return ans
}

// Gramrels returns extracted grammatical relations. Before
// ExtractGramrels is called, the second returned value is false.
func (ws *WordSketch) Gramrels() (*Gramrels, bool) {
	return ws.gramrels, ws.gramrels != nil
}

// GramrelNames returns names of extracted grammatical
// relations (nil if not extracted yet).
func (ws *WordSketch) GramrelNames() []string {
	if ws.gramrels == nil {
		return nil
	}
	return ws.gramrels.Names()
}

func (ws *WordSketch) String() string {
	pos, err := ws.POS()
	if err != nil {
		pos = "??"
	}
	return fmt.Sprintf(
		"Lemma: %s.\nPart of speech: %s ('%s').\nCorpus: %s.\n"+
			"Frequency: %d (%.2f per million).\nNumber of grammatical relations: %d.",
		ws.lemma, pos, ws.lpos, ws.corpusName, ws.freq,
		math.Round(ws.relFreq*100)/100, ws.NumGramrels(),
	)
}

// WordSketch requests a word sketch. Typically, args contain
// a corpus and a query with `lemma` and `lpos`.
func (c *Client) WordSketch(ctx context.Context, args ...params.Arg) (*WordSketch, error) {
	resp, req, err := c.call(ctx, MethodWordSketch, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get word sketch: %w", err)
	}
	var data wsketchResponse
	if err := sonic.Unmarshal(resp.Body, &data); err != nil {
		return nil, merror.MappingError{Field: "*", Msg: err.Error()}
	}
	if err := data.validate(); err != nil {
		return nil, fmt.Errorf("failed to get word sketch: %w", err)
	}
	return &WordSketch{
		client:      c,
		url:         resp.URL,
		request:     req,
		lemma:       *data.Lemma,
		lpos:        *data.Lpos,
		lposDict:    data.LposDict,
		corpusName:  *data.CorpFullName,
		freq:        *data.Freq,
		relFreq:     *data.RelFreq,
		rawGramrels: data.Gramrels,
	}, nil
}
