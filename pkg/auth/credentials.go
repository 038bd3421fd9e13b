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

package auth

import (
	"encoding/base64"
	"os"
	"strings"
)

// Credentials is the public/private API key pair required by private
// endpoints. The private key stays in its base64 form and is only decoded at
// signing time; it is never logged and never appears in responses.
type Credentials struct {
	apiKey     string
	privateKey string
}

// New constructs credentials from the public API key and the base64 encoded
// private key.
func New(apiKey, privateKey string) *Credentials {
	return &Credentials{
		apiKey:     apiKey,
		privateKey: privateKey,
	}
}

// FromFile reads credentials from a key file where the first line contains
// the public API key and the second line contains the base64 private key.
func FromFile(path string) (*Credentials, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &CredentialsError{Reason: "reading key file", Err: err}
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, &CredentialsError{Reason: "key not found"}
	}

	return New(lines[len(lines)-2], lines[len(lines)-1]), nil
}

// APIKey returns the public API key.
func (c *Credentials) APIKey() string {
	return c.apiKey
}

// DecodeSecret returns the private key decoded as base64. A key that is not
// valid base64 fails with a *CredentialsError.
func (c *Credentials) DecodeSecret() ([]byte, error) {
	secret, err := base64.StdEncoding.DecodeString(c.privateKey)
	if err != nil {
		return nil, &CredentialsError{Reason: "private key is not valid base64", Err: err}
	}
	return secret, nil
}

// String identifies the key pair without revealing it.
func (c *Credentials) String() string {
	return "auth.Credentials(redacted)"
}
