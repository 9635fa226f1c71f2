// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

// Package data implements a convenient object model for interacting with
// arbitrary JSON documents. The Trees, Objects, and Arrays in this library
// are immutable. This means that updating the structure will yield a
// new copy with the changes made, this is made efficient by sharing
// much of the structure of the new object with the old one. The library
// is based on the central Value type that holds arbitrary JSON data
// this may take on Object, Array, number, string, boolean, and null
// variants. This may be thought of as a restricted form of the go
// interface{} type. The provided Tree type allows for complex operations
// based on Path addresses.
package data
