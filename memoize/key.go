// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memoize

import (
	"fmt"
	"strings"

	"github.com/spaolacci/murmur3"
)

// Key derives a fixed-width cache key from a function name and its
// arguments. Arguments are rendered with %#v before hashing, so two
// argument lists collide only if their Go syntax is identical.
func Key(name string, args ...any) string {
	var b strings.Builder
	b.WriteString(name)
	for _, arg := range args {
		fmt.Fprintf(&b, "|%#v", arg)
	}
	h1, h2 := murmur3.Sum128([]byte(b.String()))
	return fmt.Sprintf("%016x%016x", h1, h2)
}
