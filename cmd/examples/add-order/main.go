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

// Submits a validate-only limit order: the service checks it without
// placing it.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teuthida-labs/kraken-go/pkg/asset"
	"github.com/teuthida-labs/kraken-go/pkg/auth"
	"github.com/teuthida-labs/kraken-go/pkg/client"
	"github.com/teuthida-labs/kraken-go/pkg/order"
)

func main() {
	keyPath := flag.String("keys", "kraken.key", "path to the API key file")
	flag.Parse()

	creds, err := auth.FromFile(*keyPath)
	if err != nil {
		log.Fatalf("Failed to load the API keys. (Error: %s)", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := client.New(client.WithCredentials(creds))

	req := order.NewRequest(
		asset.XRP.Pair(asset.GBP),
		order.Buy,
		order.TakeProfitLimit,
		decimal.NewFromInt(30),
	)
	req.Price = decimal.RequireFromString("0.19")
	req.Price2 = decimal.RequireFromString("0.191")
	req.Flags = "fciq"
	req.Validate = true

	resp, err := client.Send[order.Placed](ctx, c, req)
	if err != nil {
		log.Fatalf("Failed to submit the order. (Error: %s)", err)
	}
	if !resp.IsSuccess() {
		log.Fatalf("The service rejected the order: %v", resp.Error)
	}

	log.Printf("Order validated: %s", resp.Result.Descr.Order)
}
