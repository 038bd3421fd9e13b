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

// Prints the account balances, colored by asset class. Requires a key file
// where the first line is the public API key and the second line the base64
// private key.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/teuthida-labs/kraken-go/pkg/api/private"
	"github.com/teuthida-labs/kraken-go/pkg/asset"
	"github.com/teuthida-labs/kraken-go/pkg/auth"
	"github.com/teuthida-labs/kraken-go/pkg/client"
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

	resp, err := client.Send[map[string]string](ctx, c, private.Balance())
	if err != nil {
		log.Fatalf("Failed to query the account balance. (Error: %s)", err)
	}
	if !resp.IsSuccess() {
		log.Fatalf("The service reported errors: %v", resp.Error)
	}

	// Balance keys use the classification prefix, e.g. "XXBT" and "ZUSD".
	for name, amount := range *resp.Result {
		if strings.HasPrefix(name, "Z") {
			fmt.Printf("%8s  %s\n", aurora.Green(name), amount)
		} else {
			fmt.Printf("%8s  %s\n", aurora.Cyan(name), amount)
		}
	}

	if usd, ok := (*resp.Result)[asset.USD.WithPrefix()]; ok {
		fmt.Printf("\nTotal USD: %s\n", aurora.Bold(usd))
	}
}
