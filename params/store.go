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

const (
	KeyFormat   = "format"
	KeyUsername = "username"
	KeyAPIKey   = "api_key"
	KeyCorpname = "corpname"
)

// storeKeys defines the order in which stored values
// are applied to a request.
var storeKeys = []string{KeyFormat, KeyUsername, KeyAPIKey, KeyCorpname}

// Credentials identify an API user
type Credentials struct {
	apiKey   string
	username string
}

func (c Credentials) APIKey() string {
	return c.apiKey
}

func (c Credentials) Username() string {
	return c.username
}

func NewCredentials(apiKey, username string) Credentials {
	return Credentials{apiKey: apiKey, username: username}
}

// Store holds default request parameters (response format,
// credentials, corpus name) applied to each request built
// with it. A Store is a value - all the "setters" return
// a modified copy so a store captured by a client
// cannot be changed behind its back.
type Store struct {
	initFormat string
	values     map[string]string
}

// Login returns a copy of the store with credentials
// replaced by the provided ones.
func (s Store) Login(cred Credentials) Store {
	ans := s.clone()
	ans.values[KeyAPIKey] = cred.apiKey
	ans.values[KeyUsername] = cred.username
	return ans
}

// WithDefaultCorpus returns a copy of the store with
// the default corpus set to corpname.
func (s Store) WithDefaultCorpus(corpname string) Store {
	ans := s.clone()
	ans.values[KeyCorpname] = corpname
	return ans
}

// Reset returns a store with all the values unset
// except for the response format the store was created with.
func (s Store) Reset() Store {
	return NewStore(s.initFormat)
}

// Get returns a stored value and a flag telling whether
// the value is set at all.
func (s Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Values returns a copy of all the defined values.
func (s Store) Values() map[string]string {
	ans := make(map[string]string, len(s.values))
	for k, v := range s.values {
		ans[k] = v
	}
	return ans
}

func (s Store) clone() Store {
	return Store{
		initFormat: s.initFormat,
		values:     s.Values(),
	}
}

// NewStore creates a store with only the response format defined.
// An empty format leaves the format unset.
func NewStore(format string) Store {
	ans := Store{
		initFormat: format,
		values:     make(map[string]string),
	}
	if format != "" {
		ans.values[KeyFormat] = format
	}
	return ans
}
