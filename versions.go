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

// Package krakengo provides version information for kraken-go.
package krakengo

import "github.com/teuthida-labs/kraken-go/pkg/api"

const (
	// Version is the current version of kraken-go
	Version = "0.1.0"

	// DefaultUserAgent is the User-Agent header value sent with every
	// request unless the client is constructed with its own
	DefaultUserAgent = "kraken-go/" + Version
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	KrakenGoVersion string
	RESTAPIVersion  string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		KrakenGoVersion: Version,
		RESTAPIVersion:  api.Version,
	}
}
