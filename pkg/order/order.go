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

// Package order models buy/sell orders and finalizes them into AddOrder
// requests.
package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/teuthida-labs/kraken-go/pkg/api"
	"github.com/teuthida-labs/kraken-go/pkg/api/private"
)

// Side of an order.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Type enumerates the order types the exchange accepts.
type Type string

const (
	// Market buys/sells at the best market price.
	Market Type = "market"
	// Limit buys/sells at a fixed price per asset.
	Limit Type = "limit"
	// SettlePosition settles position(s) at the original order price.
	SettlePosition Type = "settle-position"
	// StopLoss triggers a market order once the stop price is crossed.
	StopLoss Type = "stop-loss"
	// StopLossLimit triggers a limit order once the stop price is crossed.
	StopLossLimit Type = "stop-loss-limit"
	// TakeProfit triggers a market order once the profit price is crossed.
	TakeProfit Type = "take-profit"
	// TakeProfitLimit triggers a limit order once the profit price is
	// crossed.
	TakeProfitLimit Type = "take-profit-limit"
)

// Request describes a new order before submission. It satisfies
// api.Requester, so it can be handed straight to the client:
//
//	req := order.NewRequest(asset.XBT.Pair(asset.EUR), order.Buy,
//	    order.Limit, decimal.NewFromFloat(1.25))
//	req.Price = decimal.NewFromInt(37500)
//	resp, err := client.Send[order.Placed](ctx, c, req)
type Request struct {
	// Pair is the asset pair name, e.g. "XXBTZEUR".
	Pair string
	Side Side
	Type Type
	// Volume is the order quantity in the base asset.
	Volume decimal.Decimal
	// Price is the primary price; its meaning depends on Type.
	Price decimal.Decimal
	// Price2 is the secondary price used by the *-limit trigger types.
	Price2 decimal.Decimal
	// ClientOrderID identifies the order across resubmissions so that
	// retries are idempotent server-side.
	ClientOrderID string
	// Flags holds comma separated order flags, e.g. "fciq" to prefer fees
	// in the quote currency.
	Flags string
	// Validate only checks the order server-side without placing it.
	Validate bool
}

// NewRequest starts an order request with a fresh client order id. Callers
// may overwrite ClientOrderID to control idempotency themselves.
func NewRequest(pair string, side Side, typ Type, volume decimal.Decimal) Request {
	return Request{
		Pair:          pair,
		Side:          side,
		Type:          typ,
		Volume:        volume,
		ClientOrderID: uuid.NewString(),
	}
}

// Build finalizes the order into a private AddOrder request.
func (r Request) Build() api.Request {
	b := private.AddOrder().
		With("pair", r.Pair).
		With("type", string(r.Side)).
		With("ordertype", string(r.Type)).
		With("volume", r.Volume)
	if !r.Price.IsZero() {
		b.With("price", r.Price)
	}
	if !r.Price2.IsZero() {
		b.With("price2", r.Price2)
	}
	if r.ClientOrderID != "" {
		b.With("cl_ord_id", r.ClientOrderID)
	}
	if r.Flags != "" {
		b.With("oflags", r.Flags)
	}
	if r.Validate {
		b.With("validate", true)
	}
	return b.Build()
}

// Placed is the result payload of a successful AddOrder call.
type Placed struct {
	// Descr describes the placed order.
	Descr struct {
		Order string `json:"order"`
		Close string `json:"close,omitempty"`
	} `json:"descr"`
	// Txid lists the transaction ids, absent when the order was only
	// validated.
	Txid []string `json:"txid,omitempty"`
}
