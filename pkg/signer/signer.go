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

package signer

import "github.com/teuthida-labs/kraken-go/pkg/auth"

// RequestSigner produces the API-Sign header value for a private request.
type RequestSigner interface {
	// Sign signs the request for the given versioned URI path and nonce.
	// body must be the exact byte sequence that will be transmitted as the
	// request body, nonce included; a signature over anything else is
	// rejected by the service.
	Sign(path string, nonce uint64, body []byte, creds *auth.Credentials) (string, error)
}
