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

package asset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test fiat and crypto classification
func TestClassification(t *testing.T) {
	assert.True(t, USD.IsFiat())
	assert.True(t, EUR.IsFiat())
	assert.False(t, USD.IsCrypto())

	assert.True(t, XBT.IsCrypto())
	assert.False(t, XBT.IsFiat())

	// Unknown assets default to crypto, like any new listing.
	assert.True(t, Asset("BOGUS").IsCrypto())
}

// Test the X/Z classification prefixes
func TestWithPrefix(t *testing.T) {
	assert.Equal(t, "XXBT", XBT.WithPrefix())
	assert.Equal(t, "ZEUR", EUR.WithPrefix())
	assert.Equal(t, "ZUSD", USD.WithPrefix())
}

// Test pair names: mixed crypto/fiat pairs use prefixed names, same-class
// pairs use the plain ones
func TestPair(t *testing.T) {
	assert.Equal(t, "XXBTZEUR", XBT.Pair(EUR))
	assert.Equal(t, "ZGBPXXRP", GBP.Pair(XRP))
	assert.Equal(t, "XBTETH", XBT.Pair(ETH))
	assert.Equal(t, "USDEUR", USD.Pair(EUR))
}

// Test unrecognized identifiers decode as-is instead of failing
func TestUnknownAssetDecodes(t *testing.T) {
	var balances map[Asset]string
	raw := []byte(`{"XXBT": "1.0", "NEWCOIN2099": "7.5"}`)
	require.NoError(t, json.Unmarshal(raw, &balances))

	assert.Len(t, balances, 2)
	assert.Equal(t, "7.5", balances[Asset("NEWCOIN2099")])
	assert.False(t, Asset("NEWCOIN2099").IsKnown())
	assert.True(t, XBT.IsKnown())
}
