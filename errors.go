// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import "errors"

var (
	// ErrNotFound is returned by Get and Delete when the key is absent or
	// its entry has passed its deadline.
	ErrNotFound = errors.New("lru: key not found")

	// ErrClosed is returned by writes issued after Close.
	ErrClosed = errors.New("lru: cache is closed")
)
