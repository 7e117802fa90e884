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
	"errors"
	"net/http"
	"skeapi/params"
	"skeapi/results"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

const (
	dfltExamplesPages    = 1
	dfltExamplesPageSize = 20
)

// CorpusInfo godoc
// @Summary      CorpusInfo
// @Description  Get basic information about a corpus
// @Produce      json
// @Param        corpusId path string true "An ID of a corpus"
// @Success      200 {object} results.CorpusInfoResponse
// @Router       /corpus-info/{corpusId} [get]
func (a *Actions) CorpusInfo(ctx *gin.Context) {
	corpusID := ctx.Param("corpusId")
	info, err := a.clientFor(corpusID).Corpus(corpusID).Info(ctx.Request.Context())
	if err != nil {
		a.respondWithError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, &results.CorpusInfo{Corpname: corpusID, Info: info})
}

// WordSketch godoc
// @Summary      WordSketch
// @Description  Get a word sketch of a lemma including its grammatical relations
// @Produce      json
// @Param        corpusId path string true "An ID of a corpus"
// @Param        lemma query string true "the lemma"
// @Param        lpos query string false "lempos suffix (e.g. -j)"
// @Param        maxItems query int false "max. number of collocates per relation" default(0)
// @Success      200 {object} results.WordSketchResponse
// @Router       /word-sketch/{corpusId} [get]
func (a *Actions) WordSketch(ctx *gin.Context) {
	corpusID := ctx.Param("corpusId")
	maxItems, ok := unireq.GetURLIntArgOrFail(ctx, "maxItems", 0)
	if !ok {
		return
	}
	qArgs := map[string]any{"lemma": ctx.Query("lemma")}
	if lpos, ok := ctx.GetQuery("lpos"); ok {
		qArgs["lpos"] = lpos
	}
	query, err := params.NewQuery(qArgs)
	if err != nil {
		a.respondWithError(ctx, err)
		return
	}
	client := a.clientFor(corpusID)
	ws, err := client.WordSketch(ctx.Request.Context(), params.CorpusArg(corpusID), params.QueryArg(query))
	if err != nil {
		a.respondWithError(ctx, err)
		return
	}
	ws.ExtractGramrels()
	uniresp.WriteJSONResponse(ctx.Writer, &results.WordSketch{Data: ws, MaxItems: maxItems})
}

// Examples godoc
// @Summary      Examples
// @Description  Get example sentences of a collocate identified by its seek token
// @Produce      json
// @Param        corpusId path string true "An ID of a corpus"
// @Param        seek query string true "seek token of a collocate (see word sketch)"
// @Param        pages query int false "number of pages to fetch" default(1)
// @Param        pageSize query int false "page size" default(20)
// @Param        viewmode query string false "view mode" enums(sen, kwic)
// @Success      200 {object} results.Examples
// @Router       /examples/{corpusId} [get]
func (a *Actions) Examples(ctx *gin.Context) {
	corpusID := ctx.Param("corpusId")
	seek := ctx.Query("seek")
	if seek == "" {
		uniresp.RespondWithErrorJSON(ctx, errors.New("missing `seek` argument"), http.StatusBadRequest)
		return
	}
	pages, ok := unireq.GetURLIntArgOrFail(ctx, "pages", dfltExamplesPages)
	if !ok {
		return
	}
	pageSize, ok := unireq.GetURLIntArgOrFail(ctx, "pageSize", dfltExamplesPageSize)
	if !ok {
		return
	}
	coll := a.clientFor(corpusID).SeekCollocate(corpusID, seek)
	if viewMode := ctx.Query("viewmode"); viewMode != "" {
		if err := coll.SetViewMode(viewMode); err != nil {
			a.respondWithError(ctx, err)
			return
		}
	}
	lines, err := coll.Examples(ctx.Request.Context(), pages, pageSize)
	if err != nil {
		a.respondWithError(ctx, err)
		return
	}
	ans := results.Examples{
		Seek:      seek,
		ConcQuery: coll.ConcQuery(),
		Pages:     pages,
		PageSize:  pageSize,
		Lines:     lines,
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans.AlwaysAsList())
}
