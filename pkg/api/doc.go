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

// Package api models endpoint requests and the response envelope.
//
// Requests are built fluently from the factories in the public and private
// subpackages, which fix the endpoint's privacy class at construction time:
//
//	req := public.Trades().
//	    With("pair", "XXBTZEUR").
//	    With("since", since)
//
// Parameters accept any value convertible to a canonical string form
// (strings, numbers, bools and fmt.Stringer implementations); setting the
// same key twice overwrites the earlier value.
//
// # Response envelope
//
// Every endpoint responds with the same two-field JSON envelope:
//
//	error  = array of error messages
//	result = result of the call (may not be present if errors occur)
//
// Response[T] mirrors it, generic over the caller's result type, and
// ResponseValue keeps the result as raw JSON. The two fields decode
// independently: Decode reports the service error list even when the result
// does not fit T.
package api
