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

// Package client dispatches endpoint requests, signing the private ones.
//
// # Basic usage
//
//	c := client.New()
//
//	type serverTime struct {
//	    UnixTime uint64 `json:"unixtime"`
//	}
//
//	resp, err := client.Send[serverTime](ctx, c, public.Time())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !resp.IsSuccess() {
//	    log.Fatalf("service errors: %v", resp.Error)
//	}
//	fmt.Println(resp.Result.UnixTime)
//
// # Private endpoints
//
//	creds, _ := auth.FromFile("kraken.key")
//	c := client.New(client.WithCredentials(creds))
//
//	resp, err := client.Send[map[string]string](ctx, c, private.Balance())
//
// Dispatching a private request draws a nonce from the client's strictly
// increasing sequence, form-encodes the parameters (nonce included), signs
// that exact byte string and posts it with the API-Key and API-Sign headers.
//
// # Result typing
//
// Send is generic over the result type; SendValue keeps the result as raw
// JSON when the shape is not worth modelling:
//
//	resp, err := c.SendValue(ctx, public.Time())
//
// # Errors
//
// Dispatch failures are typed: ErrMissingCredentials (private endpoint, no
// credentials, checked before any network call), *auth.CredentialsError
// (malformed private key), *TransportError (network failure) and
// *api.DecodeError (body did not match the envelope or the result type).
// Service-reported errors inside a decoded envelope are data, not dispatch
// failures; check Response.Error or Response.IsSuccess.
//
// # Concurrency
//
// A Client may be shared freely across goroutines; nonce issuance is a
// single atomic step and everything else is read-only after construction.
// The transport can be cancelled through the context; a nonce consumed by a
// cancelled request is simply never acknowledged, which the service permits.
package client
