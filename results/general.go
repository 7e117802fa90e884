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
	"math"
	"skeapi/sketch"

	"github.com/bytedance/sonic"
)

// NormRound performs a normalized rounding to
// the three decimal places so we can provide
// consistent rounding across all the results
func NormRound(val float64) float64 {
	return math.Round(val*1000) / 1000
}

func errToStr(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}

// ----

type CorpusInfoResponse struct {
	Corpname      string            `json:"corpname"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Documentation string            `json:"documentation"`
	Encoding      string            `json:"encoding"`
	Lempos        map[string]string `json:"lempos"`
	Size          sketch.SizesInfo  `json:"size"`
} // @name CorpusInfo

type CorpusInfo struct {
	Corpname string
	Info     *sketch.CorpusInfo
}

func (res *CorpusInfo) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(CorpusInfoResponse{
		Corpname:      res.Corpname,
		Name:          res.Info.Name,
		Description:   res.Info.Description,
		Documentation: res.Info.Documentation,
		Encoding:      res.Info.Encoding,
		Lempos:        res.Info.Lempos,
		Size:          res.Info.Size,
	})
}

// ----

type CollocateItem struct {
	Word      string  `json:"word"`
	Score     float64 `json:"score"`
	Count     int64   `json:"count"`
	Seek      string  `json:"seek"`
	ConcQuery string  `json:"concQuery"`
	Example   string  `json:"example,omitempty"`
	Lempos    string  `json:"lempos,omitempty"`
}

type GramrelItem struct {
	Name       string          `json:"name"`
	Collocates []CollocateItem `json:"collocates"`
}

type WordSketchResponse struct {
	Lemma        string        `json:"lemma"`
	Lpos         string        `json:"lpos"`
	POS          string        `json:"pos"`
	Corpus       string        `json:"corpus"`
	FrequencyRaw int64         `json:"freq"`
	FrequencyRel float64       `json:"relFreq"`
	Gramrels     []GramrelItem `json:"gramrels"`
	Error        string        `json:"error,omitempty"`
} // @name WordSketch

// WordSketch is a view of a word sketch with extracted
// grammatical relations. MaxItems limits the number
// of collocates per relation (0 means no limit).
type WordSketch struct {
	Data     *sketch.WordSketch
	MaxItems int
}

func (res *WordSketch) exportGramrels() []GramrelItem {
	grs, ok := res.Data.Gramrels()
	if !ok {
		grs = res.Data.BuildGramrels()
	}
	ans := make([]GramrelItem, 0, len(grs.Names()))
	for _, group := range grs.Groups() {
		colls := group.Collocates()
		if res.MaxItems > 0 && len(colls) > res.MaxItems {
			colls = colls[:res.MaxItems]
		}
		item := GramrelItem{
			Name:       group.Name,
			Collocates: make([]CollocateItem, len(colls)),
		}
		for i, c := range colls {
			example, _ := c.Example()
			lempos, _ := c.Lempos()
			item.Collocates[i] = CollocateItem{
				Word:      c.Word(),
				Score:     NormRound(c.Score()),
				Count:     c.Count(),
				Seek:      c.Seek(),
				ConcQuery: c.ConcQuery(),
				Example:   example,
				Lempos:    lempos,
			}
		}
		ans = append(ans, item)
	}
	return ans
}

func (res *WordSketch) MarshalJSON() ([]byte, error) {
	pos, err := res.Data.POS()
	return sonic.Marshal(WordSketchResponse{
		Lemma:        res.Data.Lemma(),
		Lpos:         res.Data.Lpos(),
		POS:          pos,
		Corpus:       res.Data.CorpusName(),
		FrequencyRaw: res.Data.FrequencyRaw(),
		FrequencyRel: NormRound(res.Data.FrequencyRel()),
		Gramrels:     res.exportGramrels(),
		Error:        errToStr(err),
	})
}

// ----

type Examples struct {
	Seek      string   `json:"seek"`
	ConcQuery string   `json:"concQuery"`
	Pages     int      `json:"pages"`
	PageSize  int      `json:"pageSize"`
	Lines     []string `json:"lines"`
} // @name Examples

// AlwaysAsList returns an empty list in case
// there are no lines.
func (res Examples) AlwaysAsList() Examples {
	if res.Lines == nil {
		res.Lines = []string{}
	}
	return res
}
