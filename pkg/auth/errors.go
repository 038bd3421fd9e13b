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

package auth

import "fmt"

// CredentialsError reports an invalid or unusable API key pair. It is fatal
// for the current attempt and never retried by the library.
type CredentialsError struct {
	Reason string
	Err    error
}

func (e *CredentialsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid credentials: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid credentials: %s", e.Reason)
}

func (e *CredentialsError) Unwrap() error {
	return e.Err
}
