// Copyright (C) 2026 Teuthida Labs
//
// This file is part of kraken-go.
//
// kraken-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// kraken-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with kraken-go.  If not, see <https://www.gnu.org/licenses/>.

package api

import (
	"fmt"
	"net/url"
	"strconv"
)

// Builder accumulates named parameters for an endpoint request. It performs
// no network or crypto work; it is pure data accumulation, finalized with
// Build.
//
// A Builder is not safe for concurrent use; each call site owns its own.
type Builder struct {
	kind   Kind
	name   string
	params url.Values
}

// NewPublic starts a builder for the named public endpoint.
func NewPublic(name string) *Builder {
	return newBuilder(Public, name)
}

// NewPrivate starts a builder for the named private endpoint.
func NewPrivate(name string) *Builder {
	return newBuilder(Private, name)
}

func newBuilder(kind Kind, name string) *Builder {
	return &Builder{
		kind:   kind,
		name:   name,
		params: url.Values{},
	}
}

// With sets the parameter to the canonical string form of value. Setting the
// same key twice overwrites the earlier value.
func (b *Builder) With(key string, value any) *Builder {
	b.params.Set(key, canonical(value))
	return b
}

// Build finalizes the accumulated parameters into an immutable Request. The
// builder can keep being used afterwards without affecting the built value.
func (b *Builder) Build() Request {
	params := make(url.Values, len(b.params))
	for key, values := range b.params {
		params[key] = append([]string(nil), values...)
	}
	return Request{
		kind:   b.kind,
		name:   b.name,
		params: params,
	}
}

// canonical converts a parameter value to the single string form used both
// on the wire and as signing input.
func canonical(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
