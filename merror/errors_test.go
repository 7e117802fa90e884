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

package merror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Missing: []string{"api_key", "corpname"}}
	assert.Equal(t, "missing parameter(s): api_key, corpname.", err.Error())
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("failed to load corpus info: %w", MappingError{Field: "name"})
	assert.Equal(t, KindMapping, KindOf(err))
}

func TestKindOfAll(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(ValidationError{Missing: []string{"username"}}))
	assert.Equal(t, KindValue, KindOf(ValueError{Msg: "non-empty string expected"}))
	assert.Equal(t, KindTransport, KindOf(TransportError{Status: 500}))
	assert.Equal(t, KindUnknown, KindOf(errors.New("foo")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestTransportErrorMessage(t *testing.T) {
	assert.Equal(t, "request failed (status 403)", TransportError{Status: 403}.Error())
	assert.Equal(
		t,
		"request failed (status 200): corpus not found",
		TransportError{Status: 200, Msg: "corpus not found"}.Error(),
	)
}

func TestMarshalValueError(t *testing.T) {
	data, err := ValueError{}.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
