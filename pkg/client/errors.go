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
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned when a private endpoint is dispatched
// through a client constructed without credentials. No transport call is
// made and no nonce is spent.
var ErrMissingCredentials = errors.New("private endpoint requires credentials")

// TransportError reports a failure of the underlying HTTP transport
// (connection refused, timeout, TLS failure, truncated body). The library
// does not retry; retry and backoff policy belong to the caller.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
