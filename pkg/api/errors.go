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

import "fmt"

// Fields of the response envelope that can fail to decode.
const (
	FieldEnvelope = "envelope"
	FieldResult   = "result"
)

// DecodeError reports a response body that did not match the envelope shape
// or the caller's result type. Field names which part failed and StatusCode
// carries the HTTP status the body arrived with, so a service-contract
// mismatch can be told apart from a transport problem.
type DecodeError struct {
	StatusCode int
	Field      string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response %s (status %d): %v", e.Field, e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
