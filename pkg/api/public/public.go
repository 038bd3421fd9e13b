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

// Package public constructs requests for the public market data endpoints.
// None of them require credentials.
package public

import "github.com/teuthida-labs/kraken-go/pkg/api"

// Time gets the server time.
func Time() *api.Builder {
	return api.NewPublic("Time")
}

// SystemStatus gets the current system status.
func SystemStatus() *api.Builder {
	return api.NewPublic("SystemStatus")
}

// Assets gets asset info.
func Assets() *api.Builder {
	return api.NewPublic("Assets")
}

// AssetPairs gets tradable asset pairs.
func AssetPairs() *api.Builder {
	return api.NewPublic("AssetPairs")
}

// Ticker gets ticker info.
func Ticker() *api.Builder {
	return api.NewPublic("Ticker")
}

// OHLC gets OHLC candle data.
func OHLC() *api.Builder {
	return api.NewPublic("OHLC")
}

// Depth gets the order book.
func Depth() *api.Builder {
	return api.NewPublic("Depth")
}

// Trades gets recent trades.
func Trades() *api.Builder {
	return api.NewPublic("Trades")
}

// Spread gets recent spread data.
func Spread() *api.Builder {
	return api.NewPublic("Spread")
}
