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
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind allows callers to branch on a failure category
// without type-switching over all the error structs.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindValue
	KindTransport
	KindMapping
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindValue:
		return "value"
	case KindTransport:
		return "transport"
	case KindMapping:
		return "mapping"
	}
	return "unknown"
}

// ValidationError reports required request parameters
// which are missing or empty after all the defaults were applied.
type ValidationError struct {
	Missing []string
}

func (err ValidationError) Error() string {
	return fmt.Sprintf("missing parameter(s): %s.", strings.Join(err.Missing, ", "))
}

func (err ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// ----------------------------

type ValueError struct {
	Msg string
}

func (err ValueError) Error() string {
	return err.Msg
}

func (err ValueError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ---------------------------

// TransportError is either a non-success HTTP status
// or an `error` field found in an otherwise valid response.
// In the latter case, Status is the (successful) HTTP status
// of the response.
type TransportError struct {
	Status int
	URL    string
	Msg    string
}

func (err TransportError) Error() string {
	if err.Msg != "" {
		return fmt.Sprintf("request failed (status %d): %s", err.Status, err.Msg)
	}
	return fmt.Sprintf("request failed (status %d)", err.Status)
}

func (err TransportError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// ---------------------------

type MappingError struct {
	Field string
	Msg   string
}

func (err MappingError) Error() string {
	if err.Msg != "" {
		return fmt.Sprintf("failed to map field `%s`: %s", err.Field, err.Msg)
	}
	return fmt.Sprintf("missing field `%s` in response", err.Field)
}

func (err MappingError) MarshalJSON() ([]byte, error) {
	return json.Marshal(err.Error())
}

// -----------------

// KindOf determines the kind of a (possibly wrapped) error.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var vErr ValidationError
	if errors.As(err, &vErr) {
		return KindValidation
	}
	var valErr ValueError
	if errors.As(err, &valErr) {
		return KindValue
	}
	var tErr TransportError
	if errors.As(err, &tErr) {
		return KindTransport
	}
	var mErr MappingError
	if errors.As(err, &mErr) {
		return KindMapping
	}
	return KindUnknown
}
