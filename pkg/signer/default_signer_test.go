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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teuthida-labs/kraken-go/pkg/auth"
)

// testSecret is the API-Sign example secret from the service documentation.
const testSecret = "kQH5HW/8p1uGOVjbgWA7FunAmGO8lsSUXNsu3eow76sz84Q18fWxnyRzBHCd3pd5nE9qa99HAZtuZuj6F1huXg=="

// Conformance vectors pinning the signature scheme. The AddOrder vector and
// its expected API-Sign come verbatim from the service documentation.
func TestSignConformanceVectors(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		nonce uint64
		body  string
		want  string
	}{
		{
			name:  "balance",
			path:  "/0/private/Balance",
			nonce: 1616492376594,
			body:  "nonce=1616492376594",
			want:  "1nH4vwR+8FHiYh1QT649xXkGd3JR3x0DWkgv3u9Ed/Qqv6KPtgQpEU4m+Emb/VgpEji3j1XNwI+HCbfXxmrTOg==",
		},
		{
			name:  "add order",
			path:  "/0/private/AddOrder",
			nonce: 1616492376594,
			body:  "nonce=1616492376594&ordertype=limit&pair=XBTUSD&price=37500&type=buy&volume=1.25",
			want:  "4/dpxb3iT4tp/ZCVEwSnEsLxx0bqyhLpdfOpc6fn7OR8+UClSV5n9E6aSS8MPtnRfp32bAb0nmbRn6H8ndwLUQ==",
		},
	}

	s := NewDefaultSigner()
	creds := auth.New("api-key", testSecret)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Sign(tt.path, tt.nonce, []byte(tt.body), creds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Test signing is deterministic for a fixed input tuple
func TestSignDeterministic(t *testing.T) {
	s := NewDefaultSigner()
	creds := auth.New("api-key", testSecret)

	first, err := s.Sign("/0/private/Balance", 1616492376594, []byte("nonce=1616492376594"), creds)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := s.Sign("/0/private/Balance", 1616492376594, []byte("nonce=1616492376594"), creds)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// Test different nonces produce different signatures
func TestSignNonceChangesSignature(t *testing.T) {
	s := NewDefaultSigner()
	creds := auth.New("api-key", testSecret)

	a, err := s.Sign("/0/private/Balance", 1, []byte("nonce=1"), creds)
	require.NoError(t, err)
	b, err := s.Sign("/0/private/Balance", 2, []byte("nonce=2"), creds)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

// Test a non-base64 secret fails with a credentials error and no signature
func TestSignInvalidSecret(t *testing.T) {
	s := NewDefaultSigner()
	creds := auth.New("api-key", "!!not base64!!")

	sig, err := s.Sign("/0/private/Balance", 1, []byte("nonce=1"), creds)
	assert.Empty(t, sig)

	var credsErr *auth.CredentialsError
	require.ErrorAs(t, err, &credsErr)
}
