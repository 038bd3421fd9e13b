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

// Package private constructs requests for the private endpoints. Dispatching
// any of them requires a client constructed with credentials: the dispatcher
// adds a nonce and signs the request body.
package private

import "github.com/teuthida-labs/kraken-go/pkg/api"

// Balance gets the account balance.
func Balance() *api.Builder {
	return api.NewPrivate("Balance")
}

// TradeBalance gets the trade balance.
func TradeBalance() *api.Builder {
	return api.NewPrivate("TradeBalance")
}

// OpenOrders gets open orders.
func OpenOrders() *api.Builder {
	return api.NewPrivate("OpenOrders")
}

// ClosedOrders gets closed orders.
func ClosedOrders() *api.Builder {
	return api.NewPrivate("ClosedOrders")
}

// QueryOrders queries orders info.
func QueryOrders() *api.Builder {
	return api.NewPrivate("QueryOrders")
}

// TradesHistory gets the trades history.
func TradesHistory() *api.Builder {
	return api.NewPrivate("TradesHistory")
}

// QueryTrades queries trades info.
func QueryTrades() *api.Builder {
	return api.NewPrivate("QueryTrades")
}

// OpenPositions gets open positions.
func OpenPositions() *api.Builder {
	return api.NewPrivate("OpenPositions")
}

// Ledgers gets ledgers info.
func Ledgers() *api.Builder {
	return api.NewPrivate("Ledgers")
}

// QueryLedgers queries ledgers.
func QueryLedgers() *api.Builder {
	return api.NewPrivate("QueryLedgers")
}

// TradeVolume gets the trade volume.
func TradeVolume() *api.Builder {
	return api.NewPrivate("TradeVolume")
}

// AddExport requests an export report.
func AddExport() *api.Builder {
	return api.NewPrivate("AddExport")
}

// ExportStatus gets export statuses.
func ExportStatus() *api.Builder {
	return api.NewPrivate("ExportStatus")
}

// RetrieveExport gets an export report.
func RetrieveExport() *api.Builder {
	return api.NewPrivate("RetrieveExport")
}

// RemoveExport removes an export report.
func RemoveExport() *api.Builder {
	return api.NewPrivate("RemoveExport")
}

// AddOrder adds a standard order.
func AddOrder() *api.Builder {
	return api.NewPrivate("AddOrder")
}

// CancelOrder cancels an open order.
func CancelOrder() *api.Builder {
	return api.NewPrivate("CancelOrder")
}

// CancelAll cancels all open orders.
func CancelAll() *api.Builder {
	return api.NewPrivate("CancelAll")
}

// CancelAllOrdersAfter cancels all orders when the timeout expires.
func CancelAllOrdersAfter() *api.Builder {
	return api.NewPrivate("CancelAllOrdersAfter")
}

// DepositMethods gets deposit methods.
func DepositMethods() *api.Builder {
	return api.NewPrivate("DepositMethods")
}

// DepositAddresses gets deposit addresses.
func DepositAddresses() *api.Builder {
	return api.NewPrivate("DepositAddresses")
}

// DepositStatus gets the status of recent deposits.
func DepositStatus() *api.Builder {
	return api.NewPrivate("DepositStatus")
}

// WithdrawInfo gets withdrawal information.
func WithdrawInfo() *api.Builder {
	return api.NewPrivate("WithdrawInfo")
}

// Withdraw withdraws funds.
func Withdraw() *api.Builder {
	return api.NewPrivate("Withdraw")
}

// WithdrawStatus gets the status of recent withdrawals.
func WithdrawStatus() *api.Builder {
	return api.NewPrivate("WithdrawStatus")
}

// WithdrawCancel requests a withdrawal cancellation.
func WithdrawCancel() *api.Builder {
	return api.NewPrivate("WithdrawCancel")
}

// WalletTransfer transfers funds between wallets.
func WalletTransfer() *api.Builder {
	return api.NewPrivate("WalletTransfer")
}

// GetWebSocketsToken gets a token to connect to and authenticate with the
// websockets API.
func GetWebSocketsToken() *api.Builder {
	return api.NewPrivate("GetWebSocketsToken")
}
