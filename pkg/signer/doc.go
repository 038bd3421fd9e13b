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

// Package signer produces the API-Sign value attached to private requests.
//
// The signature must interoperate bit-for-bit with the service:
//
//  1. message   = decimal nonce string ++ encoded request body
//  2. digest    = SHA256(message)
//  3. macInput  = URI path bytes ++ digest
//  4. signature = HMAC-SHA512(key = base64 decoded private key, macInput)
//  5. API-Sign  = base64(signature)
//
// The encoded body passed in must be the exact bytes transmitted on the
// wire; the dispatcher guarantees this by signing the same string it posts.
//
// RequestSigner is an interface so tests and embedding programs can
// substitute their own implementation on the client.
package signer
