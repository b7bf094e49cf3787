package user

// PasswordHasher abstracts the hashing scheme from the domain.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
