// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

package data

func assert(expr bool, ifFalse func()) {
	if !expr {
		ifFalse()
	}
}
