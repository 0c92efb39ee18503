package model

import (
	"crypto/sha256"
	"encoding/hex"
)

// identityDomain separates record identity hashes from any other SHA-256
// use. The version suffix allows migrating the hash layout later.
const identityDomain = "serdex/record/v1"

// identityHash computes the identity hash for a record: SHA-256 over the
// domain, the schema name, and the canonical form of every field value in
// declaration order. Null stands in for fields left unset. Two records of
// the same schema collide exactly when all their field values match.
func identityHash(sc *Schema, fields Map) string {
	h := sha256.New()
	h.Write([]byte(identityDomain))
	h.Write([]byte{0x00})
	h.Write([]byte(sc.Name))

	buf := make([]byte, 0, 256)
	for _, f := range sc.Fields {
		fv, ok := fields[f.Name]
		if !ok {
			fv = Null{}
		}
		buf = buf[:0]
		buf = AppendCanonical(buf, fv)
		h.Write([]byte{0x00})
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}
