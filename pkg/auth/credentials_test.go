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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey = "test-api-key"
	// base64 of "hunter2-private-key"
	testPrivateKey = "aHVudGVyMi1wcml2YXRlLWtleQ=="
)

func writeKeyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kraken.key")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// Test FromFile reads the two-line key file format
func TestFromFile(t *testing.T) {
	path := writeKeyFile(t, testAPIKey+"\n"+testPrivateKey+"\n")

	creds, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, testAPIKey, creds.APIKey())

	secret, err := creds.DecodeSecret()
	require.NoError(t, err)
	expected, _ := base64.StdEncoding.DecodeString(testPrivateKey)
	assert.Equal(t, expected, secret)
}

// Test FromFile tolerates surrounding blank lines
func TestFromFileTrailingWhitespace(t *testing.T) {
	path := writeKeyFile(t, "\n"+testAPIKey+"\n"+testPrivateKey+"\n\n")

	creds, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, testAPIKey, creds.APIKey())
}

// Test FromFile fails when a key line is missing
func TestFromFileKeyNotFound(t *testing.T) {
	path := writeKeyFile(t, testAPIKey+"\n")

	creds, err := FromFile(path)
	assert.Nil(t, creds)

	var credsErr *CredentialsError
	require.ErrorAs(t, err, &credsErr)
	assert.Equal(t, "key not found", credsErr.Reason)
}

// Test FromFile fails on a missing file
func TestFromFileMissingFile(t *testing.T) {
	creds, err := FromFile(filepath.Join(t.TempDir(), "no-such-file"))
	assert.Nil(t, creds)

	var credsErr *CredentialsError
	require.ErrorAs(t, err, &credsErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

// Test DecodeSecret rejects a private key that is not valid base64
func TestDecodeSecretInvalid(t *testing.T) {
	creds := New(testAPIKey, "this is not base64!!!")

	secret, err := creds.DecodeSecret()
	assert.Nil(t, secret)

	var credsErr *CredentialsError
	require.ErrorAs(t, err, &credsErr)
}

// Test String never reveals the key material
func TestStringRedacted(t *testing.T) {
	creds := New(testAPIKey, testPrivateKey)

	s := creds.String()
	assert.NotContains(t, s, testAPIKey)
	assert.NotContains(t, s, testPrivateKey)
}
