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

// Package asset names the crypto and fiat currencies traded on the exchange.
//
// The set of constants below is not closed: the exchange adds assets faster
// than any client library tracks them, so Asset is a string type and any
// identifier reported by the service decodes as-is. IsKnown distinguishes
// the well-known set from pass-through values.
package asset

import "fmt"

// Asset identifies a crypto or fiat currency.
type Asset string

// Crypto currencies.
const (
	ADA   Asset = "ADA"
	ALGO  Asset = "ALGO"
	ATOM  Asset = "ATOM"
	BAL   Asset = "BAL"
	BAT   Asset = "BAT"
	BCH   Asset = "BCH"
	COMP  Asset = "COMP"
	CRV   Asset = "CRV"
	DAI   Asset = "DAI"
	DASH  Asset = "DASH"
	DOT   Asset = "DOT"
	EOS   Asset = "EOS"
	ETC   Asset = "ETC"
	ETH   Asset = "ETH"
	FIL   Asset = "FIL"
	GNO   Asset = "GNO"
	ICX   Asset = "ICX"
	KAVA  Asset = "KAVA"
	KNC   Asset = "KNC"
	KSM   Asset = "KSM"
	LINK  Asset = "LINK"
	LSK   Asset = "LSK"
	LTC   Asset = "LTC"
	MLN   Asset = "MLN"
	NANO  Asset = "NANO"
	OMG   Asset = "OMG"
	OXT   Asset = "OXT"
	PAXG  Asset = "PAXG"
	QTUM  Asset = "QTUM"
	REP   Asset = "REP"
	REPV2 Asset = "REPV2"
	SC    Asset = "SC"
	SNX   Asset = "SNX"
	STORJ Asset = "STORJ"
	TRX   Asset = "TRX"
	UNI   Asset = "UNI"
	USDC  Asset = "USDC"
	USDT  Asset = "USDT"
	WAVES Asset = "WAVES"
	XBT   Asset = "XBT"
	XDG   Asset = "XDG"
	XLM   Asset = "XLM"
	XMR   Asset = "XMR"
	XRP   Asset = "XRP"
	XTZ   Asset = "XTZ"
	YFI   Asset = "YFI"
	ZEC   Asset = "ZEC"
)

// Fiat currencies.
const (
	AUD Asset = "AUD"
	EUR Asset = "EUR"
	GBP Asset = "GBP"
	USD Asset = "USD"
)

var wellKnown = map[Asset]struct{}{
	ADA: {}, ALGO: {}, ATOM: {}, BAL: {}, BAT: {}, BCH: {}, COMP: {},
	CRV: {}, DAI: {}, DASH: {}, DOT: {}, EOS: {}, ETC: {}, ETH: {},
	FIL: {}, GNO: {}, ICX: {}, KAVA: {}, KNC: {}, KSM: {}, LINK: {},
	LSK: {}, LTC: {}, MLN: {}, NANO: {}, OMG: {}, OXT: {}, PAXG: {},
	QTUM: {}, REP: {}, REPV2: {}, SC: {}, SNX: {}, STORJ: {}, TRX: {},
	UNI: {}, USDC: {}, USDT: {}, WAVES: {}, XBT: {}, XDG: {}, XLM: {},
	XMR: {}, XRP: {}, XTZ: {}, YFI: {}, ZEC: {},
	AUD: {}, EUR: {}, GBP: {}, USD: {},
}

// IsKnown reports whether the asset is one of the well-known constants.
// Unknown assets still round-trip through the API untouched.
func (a Asset) IsKnown() bool {
	_, ok := wellKnown[a]
	return ok
}

// IsFiat reports whether the asset is a fiat currency.
func (a Asset) IsFiat() bool {
	switch a {
	case AUD, EUR, GBP, USD:
		return true
	}
	return false
}

// IsCrypto reports whether the asset is a crypto currency.
func (a Asset) IsCrypto() bool {
	return !a.IsFiat()
}

// WithPrefix returns the asset name with the exchange's classification
// prefix: Z for fiat based assets, X for crypto based ones.
func (a Asset) WithPrefix() string {
	if a.IsFiat() {
		return "Z" + string(a)
	}
	return "X" + string(a)
}

// Pair returns the pair name for trading a against other. Mixed crypto/fiat
// pairs use the prefixed names; same-class pairs concatenate the plain ones.
func (a Asset) Pair(other Asset) string {
	if a.IsFiat() != other.IsFiat() {
		return a.WithPrefix() + other.WithPrefix()
	}
	return fmt.Sprintf("%s%s", a, other)
}

func (a Asset) String() string {
	return string(a)
}
