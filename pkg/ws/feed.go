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

// Package ws streams the exchange websocket feeds.
//
// Private channels (ownTrades, openOrders) require a token from the
// GetWebSocketsToken REST endpoint:
//
//	resp, err := client.Send[ws.Token](ctx, c, private.GetWebSocketsToken())
//	// ...
//	feed, err := ws.Dial(ctx, ws.DefaultAuthURL)
//	// ...
//	err = feed.Subscribe(ws.Subscription{Name: "ownTrades", Token: resp.Result.Token})
package ws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
)

// Websocket endpoints. Tokens issued by GetWebSocketsToken are only valid on
// the authenticated endpoint.
const (
	DefaultURL     = "wss://ws.kraken.com"
	DefaultAuthURL = "wss://ws-auth.kraken.com"
)

// Token is the result payload of the GetWebSocketsToken endpoint.
type Token struct {
	// Token authenticates private channel subscriptions.
	Token string `json:"token"`
	// Expires is the token time to live in seconds; it applies to starting
	// a subscription, not to one already running.
	Expires int64 `json:"expires"`
}

// Subscription names a channel, with the token when the channel is private.
type Subscription struct {
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

// Status is the subscriptionStatus event acknowledging a subscribe request.
type Status struct {
	Event        string       `json:"event"`
	ChannelName  string       `json:"channelName"`
	Pair         string       `json:"pair"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"errorMessage"`
	Subscription Subscription `json:"subscription"`
}

type subscribeMessage struct {
	Event        string       `json:"event"`
	Pair         []string     `json:"pair,omitempty"`
	Subscription Subscription `json:"subscription"`
}

// Feed is one websocket connection to the exchange. A Feed supports one
// concurrent reader and one concurrent writer; it does not reconnect.
type Feed struct {
	conn *websocket.Conn
}

// Dial connects to the given websocket endpoint.
func Dial(ctx context.Context, url string) (*Feed, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", url, err)
	}
	return &Feed{conn: conn}, nil
}

// Subscribe requests the named channel for the given pairs. The service
// acknowledges with a subscriptionStatus event per pair.
func (f *Feed) Subscribe(sub Subscription, pairs ...string) error {
	msg := subscribeMessage{
		Event:        "subscribe",
		Pair:         pairs,
		Subscription: sub,
	}
	if err := f.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("subscribing to %s: %w", sub.Name, err)
	}
	return nil
}

// Next reads the next raw message from the feed. System events are JSON
// objects with an "event" field; channel payloads are JSON arrays.
func (f *Feed) Next() (json.RawMessage, error) {
	_, raw, err := f.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Close closes the connection.
func (f *Feed) Close() error {
	return f.conn.Close()
}
