// Package model provides the foundational types for serdex: the closed set
// of field value variants, the one-to-many reference container, record
// schemas, the schema registry, and records themselves.
//
// This package contains type definitions and pure computation only. All
// other packages import model; model imports nothing from this module. This
// keeps it the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Field values are a sealed variant set (Null, Bool, Int, Float, String,
//     List, Map, Refs, *Record). No duck typing; consumers use exhaustive
//     type switches.
//   - Every value has a canonical byte form. Record equality is canonical
//     equality; record identity is a SHA-256 over the canonical field values
//     in declaration order plus the schema name.
//   - Key fields govern sort order, never uniqueness. Two records sharing a
//     key but differing in any other field are distinct store entries.
package model
