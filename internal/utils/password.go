package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-hashes plain at the given cost. Costs outside
// bcrypt's valid range fall back to the library default, so a misconfigured
// BCRYPT_COST can never weaken or break registration. Each call salts
// freshly; two hashes of the same password never match.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	return string(b), err
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
// The comparison is constant time inside bcrypt.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
