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

package client

import (
	"sync/atomic"
	"time"
)

// nonceSource issues the strictly increasing nonces of one Client instance.
// Values track wall clock milliseconds, with a +1 tie break when the clock
// has not advanced past the last issued value.
//
// Next is a single atomic read-modify-write: no two concurrent callers can
// observe the same value, and a later call always observes a greater one.
type nonceSource struct {
	last atomic.Uint64
}

func (n *nonceSource) Next() uint64 {
	for {
		last := n.last.Load()
		next := uint64(time.Now().UnixMilli())
		if next <= last {
			next = last + 1
		}
		if n.last.CompareAndSwap(last, next) {
			return next
		}
	}
}
