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

package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverTime struct {
	UnixTime uint64 `json:"unixtime"`
}

// Test service errors decode without a result and without failing
func TestDecodeErrorsOnly(t *testing.T) {
	raw := []byte(`{"error": ["EGeneral:Invalid"], "result": null}`)

	resp, err := Decode[serverTime](http.StatusOK, raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"EGeneral:Invalid"}, resp.Error)
	assert.Nil(t, resp.Result)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
}

// Test a result decodes into the caller's type with an empty error list
func TestDecodeResultOnly(t *testing.T) {
	raw := []byte(`{"error": [], "result": {"unixtime": 1234}}`)

	resp, err := Decode[serverTime](http.StatusOK, raw)
	require.NoError(t, err)

	assert.Empty(t, resp.Error)
	require.NotNil(t, resp.Result)
	assert.Equal(t, uint64(1234), resp.Result.UnixTime)
	assert.True(t, resp.IsSuccess())
}

// Test an absent error field decodes to an empty list, not nil
func TestDecodeAbsentErrorField(t *testing.T) {
	raw := []byte(`{"result": {"unixtime": 1234}}`)

	resp, err := Decode[serverTime](http.StatusOK, raw)
	require.NoError(t, err)

	assert.NotNil(t, resp.Error)
	assert.Empty(t, resp.Error)
}

// Test both fields populated decode independently
func TestDecodeErrorsAndResult(t *testing.T) {
	raw := []byte(`{"error": ["WGeneral:Danger"], "result": {"unixtime": 99}}`)

	resp, err := Decode[serverTime](http.StatusOK, raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"WGeneral:Danger"}, resp.Error)
	require.NotNil(t, resp.Result)
	assert.Equal(t, uint64(99), resp.Result.UnixTime)
	// Non-empty error list means not a success, even with a result present.
	assert.False(t, resp.IsSuccess())
}

// Test a result that does not fit the target type fails without losing the
// decoded error list
func TestDecodeResultTypeMismatch(t *testing.T) {
	raw := []byte(`{"error": ["EQuery:Unknown asset"], "result": ["not", "an", "object"]}`)

	resp, err := Decode[serverTime](http.StatusOK, raw)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, FieldResult, decodeErr.Field)
	assert.Equal(t, http.StatusOK, decodeErr.StatusCode)

	require.NotNil(t, resp)
	assert.Equal(t, []string{"EQuery:Unknown asset"}, resp.Error)
	assert.Nil(t, resp.Result)
}

// Test a body that is not an envelope at all fails as such
func TestDecodeMalformedEnvelope(t *testing.T) {
	resp, err := Decode[serverTime](http.StatusBadGateway, []byte(`<html>bad gateway</html>`))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, FieldEnvelope, decodeErr.Field)
	assert.Equal(t, http.StatusBadGateway, decodeErr.StatusCode)
	assert.Nil(t, resp)
}

// Test success requires a 2xx status as well as an empty error list
func TestIsSuccessRequires2xx(t *testing.T) {
	resp, err := Decode[serverTime](http.StatusServiceUnavailable, []byte(`{"error": []}`))
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
}

// Test ResponseValue keeps the result as raw JSON
func TestDecodeResponseValue(t *testing.T) {
	raw := []byte(`{"error": [], "result": {"unixtime": 1234, "rfc1123": "Thu, 1 Apr 21"}}`)

	resp, err := Decode[json.RawMessage](http.StatusOK, raw)
	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.JSONEq(t, `{"unixtime": 1234, "rfc1123": "Thu, 1 Apr 21"}`, string(*resp.Result))
}
