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

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"strconv"

	"github.com/teuthida-labs/kraken-go/pkg/auth"
)

// DefaultSigner implements RequestSigner with the exchange's signature
// scheme:
//
//	API-Sign = base64(HMAC-SHA512(path + SHA256(nonce + body),
//	                              key = base64 decoded private key))
//
// Signing is deterministic and stateless; the nonce is supplied by the
// dispatcher, not generated here.
type DefaultSigner struct{}

// NewDefaultSigner creates a new DefaultSigner.
func NewDefaultSigner() *DefaultSigner {
	return &DefaultSigner{}
}

// Sign signs the canonical request body for the given URI path and nonce.
// A private key that is not valid base64 fails with a *auth.CredentialsError
// before any key material is derived.
func (s *DefaultSigner) Sign(path string, nonce uint64, body []byte, creds *auth.Credentials) (string, error) {
	secret, err := creds.DecodeSecret()
	if err != nil {
		return "", err
	}

	sha := sha256.New()
	sha.Write([]byte(strconv.FormatUint(nonce, 10)))
	sha.Write(body)

	mac := hmac.New(sha512.New, secret)
	mac.Write([]byte(path))
	mac.Write(sha.Sum(nil))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
