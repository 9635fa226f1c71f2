// Copyright (c) 2026, JSON Crack contributors.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"testing"
)

func TestDecode(t *testing.T) {
	t.Run("decodes the scalar kinds", func(t *testing.T) {
		for in, want := range map[string]*Value{
			"null":     ValueNew(nil),
			"true":     ValueNew(true),
			"false":    ValueNew(false),
			`"text"`:   ValueNew("text"),
			"10":       ValueNew(10),
			"-2.5":     ValueNew(-2.5),
			"1e3":      ValueNew(1000),
			`""`:       ValueNew(""),
			`"é"`: ValueNew("é"),
		} {
			got, err := ValueFromJSON([]byte(in))
			assert(err == nil, func() {
				t.Fatalf("decode %v: %v\n", in, err)
			})
			assert(equal(got, want), func() {
				t.Fatalf("decode %v: expected %v, got %v\n",
					in, want, got)
			})
		}
	})
	t.Run("decodes nested structure", func(t *testing.T) {
		got, err := TreeFromJSON([]byte(
			`{"users":[{"name":"ada","admin":true}],"count":1}`))
		assert(err == nil, func() {
			t.Fatalf("decode: %v\n", err)
		})
		expected := TreeFromObject(ObjectFrom(map[string]interface{}{
			"users": []interface{}{
				map[string]interface{}{
					"name":  "ada",
					"admin": true,
				},
			},
			"count": 1,
		}))
		assert(got.Equal(expected), func() {
			t.Fatalf("expected %v, got %v\n", expected, got)
		})
	})
	t.Run("all numbers decode as float64", func(t *testing.T) {
		got, err := ValueFromJSON([]byte("3"))
		assert(err == nil && got.IsNumber(), func() {
			t.Fatalf("expected a number, got %v (%v)\n", got, err)
		})
		assert(got.AsNumber() == 3.0, func() {
			t.Fatalf("expected 3.0, got %v\n", got.AsNumber())
		})
	})
	t.Run("trailing data is an error", func(t *testing.T) {
		for _, in := range []string{
			`{"a":1} xyz`, "1 2", "[1] [2]", "true false", `null,`,
		} {
			_, err := ValueFromJSON([]byte(in))
			assert(err != nil, func() {
				t.Fatalf("expected %q to fail to decode\n", in)
			})
		}
	})
	t.Run("malformed input is an error", func(t *testing.T) {
		for _, in := range []string{
			"", "{", `{"a":}`, "[1,", `{"a" 1}`, "tru",
		} {
			_, err := ValueFromJSON([]byte(in))
			assert(err != nil, func() {
				t.Fatalf("expected %q to fail to decode\n", in)
			})
		}
	})
}

func TestEncode(t *testing.T) {
	t.Run("round-trip preserves the document", func(t *testing.T) {
		in := `{"meta":{"draft":false,"version":3},"users":["ada","alan"]}`
		doc, err := TreeFromJSON([]byte(in))
		assert(err == nil, func() {
			t.Fatalf("decode: %v\n", err)
		})
		out, err := doc.MarshalJSON()
		assert(err == nil, func() {
			t.Fatalf("encode: %v\n", err)
		})
		back, err := TreeFromJSON(out)
		assert(err == nil && back.Equal(doc), func() {
			t.Fatalf("expected %v, got %s\n", doc, out)
		})
	})
	t.Run("object keys encode in sorted order", func(t *testing.T) {
		doc := TreeFromObject(ObjectFrom(map[string]interface{}{
			"zebra": 1,
			"apple": 2,
			"mango": 3,
		}))
		out, err := doc.MarshalJSON()
		assert(err == nil, func() {
			t.Fatalf("encode: %v\n", err)
		})
		expected := `{"apple":2,"mango":3,"zebra":1}`
		assert(string(out) == expected, func() {
			t.Fatalf("expected %v, got %s\n", expected, out)
		})
	})
	t.Run("same document always encodes to the same bytes", func(t *testing.T) {
		doc := testDocument()
		one, _ := doc.MarshalJSON()
		two, _ := doc.MarshalJSON()
		assert(string(one) == string(two), func() {
			t.Fatalf("expected stable encoding, got %s and %s\n",
				one, two)
		})
	})
	t.Run("MarshalIndent pretty-prints", func(t *testing.T) {
		doc := TreeFromObject(ObjectFrom(map[string]interface{}{
			"a": []interface{}{1},
		}))
		out, err := doc.MarshalIndent("  ")
		assert(err == nil, func() {
			t.Fatalf("encode: %v\n", err)
		})
		expected := "{\n  \"a\": [\n    1\n  ]\n}"
		assert(string(out) == expected, func() {
			t.Fatalf("expected %q, got %q\n", expected, out)
		})
	})
	t.Run("no trailing newline", func(t *testing.T) {
		out, err := ValueNew(1).MarshalJSON()
		assert(err == nil && string(out) == "1", func() {
			t.Fatalf("expected 1, got %q (%v)\n", out, err)
		})
	})
	t.Run("scalar roots encode", func(t *testing.T) {
		for want, v := range map[string]*Value{
			"null":   ValueNew(nil),
			"true":   ValueNew(true),
			`"text"`: ValueNew("text"),
			"2.5":    ValueNew(2.5),
		} {
			out, err := v.MarshalJSON()
			assert(err == nil && string(out) == want, func() {
				t.Fatalf("expected %v, got %s (%v)\n",
					want, out, err)
			})
		}
	})
}
