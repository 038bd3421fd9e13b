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

// Queries the public server time endpoint, the smallest possible round trip.
package main

import (
	"context"
	"log"
	"time"

	"github.com/teuthida-labs/kraken-go/pkg/api/public"
	"github.com/teuthida-labs/kraken-go/pkg/client"
)

type serverTime struct {
	UnixTime int64  `json:"unixtime"`
	RFC1123  string `json:"rfc1123"`
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := client.New()

	resp, err := client.Send[serverTime](ctx, c, public.Time())
	if err != nil {
		log.Fatalf("Failed to query the server time. (Error: %s)", err)
	}
	if !resp.IsSuccess() {
		log.Fatalf("The service reported errors: %v", resp.Error)
	}

	log.Printf("Server time: %s (unix %d)", resp.Result.RFC1123, resp.Result.UnixTime)
}
