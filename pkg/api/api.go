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

import "net/url"

// Version is the REST API version this library targets.
const Version = "0"

// Kind classifies an endpoint as public or private.
type Kind int

const (
	// Public endpoints require no credentials.
	Public Kind = iota
	// Private endpoints require credentials, a nonce and a signature.
	Private
)

func (k Kind) String() string {
	if k == Private {
		return "private"
	}
	return "public"
}

// Request is the immutable, fully specified representation of one endpoint
// call prior to signing and dispatch. Whether a request is public or private
// is fixed at construction time by the factory that created its builder.
type Request struct {
	kind   Kind
	name   string
	params url.Values
}

// Kind returns the privacy class of the endpoint.
func (r Request) Kind() Kind {
	return r.kind
}

// Name returns the endpoint name, e.g. "Balance".
func (r Request) Name() string {
	return r.name
}

// IsPublic reports whether the endpoint requires no credentials.
func (r Request) IsPublic() bool {
	return r.kind == Public
}

// IsPrivate reports whether the endpoint must be signed.
func (r Request) IsPrivate() bool {
	return r.kind == Private
}

// Path returns the versioned URI path, e.g. "/0/private/Balance". For
// private requests this exact string is covered by the signature.
func (r Request) Path() string {
	return "/" + Version + "/" + r.kind.String() + "/" + r.name
}

// Params returns a copy of the request parameters.
func (r Request) Params() url.Values {
	params := make(url.Values, len(r.params))
	for key, values := range r.params {
		params[key] = append([]string(nil), values...)
	}
	return params
}

// EncodeParams returns the canonical form encoding of the parameters: keys
// sorted, percent-encoded, '&'-separated. For public requests this is the
// URL query string; for private requests the dispatcher re-encodes after
// inserting the nonce, and the result is byte-for-byte both the transmitted
// body and the signing input.
func (r Request) EncodeParams() string {
	return r.params.Encode()
}

// Build returns the request itself, so an already built Request can be
// dispatched wherever a Requester is expected.
func (r Request) Build() Request {
	return r
}

// Requester is anything that can be finalized into a Request. It is
// satisfied by Request, *Builder and the typed request helpers.
type Requester interface {
	Build() Request
}
