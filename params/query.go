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
	"fmt"
	"skeapi/merror"
	"sort"
	"strings"
)

// Query is an immutable set of query parameters
// with non-empty string values.
type Query struct {
	params map[string]string
}

// Parameters returns a copy of the query parameters
func (q Query) Parameters() map[string]string {
	ans := make(map[string]string, len(q.params))
	for k, v := range q.params {
		ans[k] = v
	}
	return ans
}

func (q Query) ApplyTo(target map[string]string) {
	for k, v := range q.params {
		target[k] = v
	}
}

func (q Query) String() string {
	keys := make([]string, 0, len(q.params))
	for k := range q.params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var ans strings.Builder
	for _, k := range keys {
		ans.WriteString(k + ":" + q.params[k] + "\n")
	}
	return ans.String()
}

// NewQuery validates provided values and creates a new Query.
// Values must be non-empty strings.
func NewQuery(values map[string]any) (Query, error) {
	params := make(map[string]string, len(values))
	for k, v := range values {
		tv, ok := v.(string)
		if !ok {
			return Query{}, merror.ValueError{
				Msg: fmt.Sprintf("string expected for `%s`, got %T", k, v)}
		}
		if tv == "" {
			return Query{}, merror.ValueError{
				Msg: fmt.Sprintf("non-empty string expected for `%s`", k)}
		}
		params[k] = tv
	}
	return Query{params: params}, nil
}

// NewStrQuery is a typed variant of NewQuery for callers
// who already have string values.
func NewStrQuery(values map[string]string) (Query, error) {
	tmp := make(map[string]any, len(values))
	for k, v := range values {
		tmp[k] = v
	}
	return NewQuery(tmp)
}
