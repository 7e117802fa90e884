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
	"net/http"
	"skeapi/merror"
	"skeapi/sketch"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Actions struct {
	client *sketch.Client
}

// clientFor returns a client with corpusID set as the default
// corpus. This is necessary as the default corpus always takes
// precedence over explicitly passed corpora.
func (a *Actions) clientFor(corpusID string) *sketch.Client {
	return a.client.WithStore(a.client.Store().WithDefaultCorpus(corpusID))
}

func errorStatus(err error) int {
	switch merror.KindOf(err) {
	case merror.KindValidation, merror.KindValue:
		return http.StatusBadRequest
	case merror.KindTransport:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (a *Actions) respondWithError(ctx *gin.Context, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("kind", merror.KindOf(err).String()).Msg("failed to process request")
	}
	uniresp.WriteJSONErrorResponse(ctx.Writer, uniresp.NewActionErrorFrom(err), status)
}

func NewActions(client *sketch.Client) *Actions {
	return &Actions{client: client}
}
