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

// Package auth holds the API key pair used to authorize private endpoints.
//
// Credentials are constructed once, either directly with the two key strings
// or from a key file where the first line is the public API key and the
// second line is the base64 encoded private key:
//
//	creds, err := auth.FromFile("kraken.key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c := client.New(client.WithCredentials(creds))
//
// The private key never leaves the package in decoded form except through
// DecodeSecret, which the signer calls per request.
package auth
