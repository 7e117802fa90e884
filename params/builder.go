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

package params

import (
	"net/url"
	"skeapi/merror"
)

// RequiredKeys must be defined and non-empty in every request
var RequiredKeys = []string{KeyAPIKey, KeyUsername, KeyCorpname}

type argKind int

const (
	argCorpus argKind = iota
	argQuery
	argParams
)

// Arg is a single source of request parameters.
// Use CorpusArg, QueryArg and ParamsArg to create one.
type Arg struct {
	kind     argKind
	corpname string
	query    Query
	params   map[string]string
}

func CorpusArg(corpname string) Arg {
	return Arg{kind: argCorpus, corpname: corpname}
}

func QueryArg(q Query) Arg {
	return Arg{kind: argQuery, query: q}
}

// ParamsArg represents explicit (keyword) parameters. No matter
// where they are passed among other arguments, they are applied
// after all the corpus and query arguments.
func ParamsArg(p map[string]string) Arg {
	cp := make(map[string]string, len(p))
	for k, v := range p {
		cp[k] = v
	}
	return Arg{kind: argParams, params: cp}
}

// Request is a complete, validated set of request parameters.
type Request struct {
	values map[string]string
}

func (r Request) Get(key string) string {
	return r.values[key]
}

// Values returns a copy of the request parameters
func (r Request) Values() map[string]string {
	ans := make(map[string]string, len(r.values))
	for k, v := range r.values {
		ans[k] = v
	}
	return ans
}

// With returns a copy of the request with key set to value
func (r Request) With(key, value string) Request {
	ans := r.Values()
	ans[key] = value
	return Request{values: ans}
}

func (r Request) URLValues() url.Values {
	ans := make(url.Values, len(r.values))
	for k, v := range r.values {
		ans.Set(k, v)
	}
	return ans
}

func missingParams(values map[string]string) []string {
	missing := make([]string, 0, len(RequiredKeys))
	for _, k := range RequiredKeys {
		if values[k] == "" {
			missing = append(missing, k)
		}
	}
	return missing
}

// Merge combines args with the store without any validation.
//
// Note: values defined in the store always win, even over
// explicitly passed parameters (e.g. an explicit `corpname`
// is replaced by the store's default corpus once it is set).
func Merge(store Store, args ...Arg) map[string]string {
	ans := make(map[string]string)
	var explicit []map[string]string
	for _, arg := range args {
		switch arg.kind {
		case argCorpus:
			ans[KeyCorpname] = arg.corpname
		case argQuery:
			arg.query.ApplyTo(ans)
		case argParams:
			explicit = append(explicit, arg.params)
		}
	}
	for _, p := range explicit {
		for k, v := range p {
			ans[k] = v
		}
	}
	// fills missing keys and overwrites the existing ones
	for _, k := range storeKeys {
		if v, ok := store.Get(k); ok {
			ans[k] = v
		}
	}
	return ans
}

// Build merges args with the store and validates that
// all the required parameters are set.
func Build(store Store, args ...Arg) (Request, error) {
	values := Merge(store, args...)
	if missing := missingParams(values); len(missing) > 0 {
		return Request{}, merror.ValidationError{Missing: missing}
	}
	return Request{values: values}, nil
}
