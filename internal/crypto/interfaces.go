package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way digests and checks
// candidates against stored digests.
type PasswordHasher interface {
	// Hash returns the digest of plain.
	Hash(plain string) (string, error)

	// Compare reports whether plain matches hash. A mismatch is (false, nil);
	// an error means the comparison itself could not be performed.
	Compare(hash, plain string) (bool, error)
}
