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
	"bytes"
	"encoding/json"
)

// Response is the envelope every endpoint returns: a list of service error
// codes and an optional endpoint-specific result.
//
// The two fields are populated independently by the service and are not
// mutually exclusive; callers must check Error even when Result is present.
// A non-empty Error list is data, not a dispatch failure.
type Response[T any] struct {
	// Error holds the service-reported error codes, e.g. "EGeneral:Invalid
	// arguments". Empty on success, never nil after Decode.
	Error []string `json:"error"`
	// Result is the decoded endpoint payload; nil when the service omitted
	// it or returned null.
	Result *T `json:"result"`
	// StatusCode is the HTTP status the envelope arrived with.
	StatusCode int `json:"-"`
}

// ResponseValue leaves the result undecoded for callers that want to pick
// fields out of the raw JSON themselves.
type ResponseValue = Response[json.RawMessage]

// IsSuccess reports whether the response carries no service errors and the
// HTTP status code is within [200, 299].
func (r *Response[T]) IsSuccess() bool {
	return len(r.Error) == 0 && r.StatusCode >= 200 && r.StatusCode < 300
}

var jsonNull = []byte("null")

// Decode decodes raw response bytes received with the given HTTP status into
// a Response[T].
//
// The error list and the result are decoded independently. An absent or null
// result yields a nil Result without failing; a result that is present but
// does not fit T fails with a *DecodeError while still returning the
// envelope decoded so far, so the service error list stays visible. Only a
// body that is not an envelope at all yields a nil Response.
func Decode[T any](status int, raw []byte) (*Response[T], error) {
	var envelope struct {
		Error  []string        `json:"error"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &DecodeError{StatusCode: status, Field: FieldEnvelope, Err: err}
	}

	resp := &Response[T]{
		Error:      envelope.Error,
		StatusCode: status,
	}
	if resp.Error == nil {
		resp.Error = []string{}
	}

	if len(envelope.Result) == 0 || bytes.Equal(envelope.Result, jsonNull) {
		return resp, nil
	}

	result := new(T)
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return resp, &DecodeError{StatusCode: status, Field: FieldResult, Err: err}
	}
	resp.Result = result

	return resp, nil
}
