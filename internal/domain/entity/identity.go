package entity

// Identity is the opaque account reference issued by the authentication provider.
// The engine never mutates it and uses it as the key of every role record.
type Identity string

// String returns the string representation of the Identity.
func (i Identity) String() string {
	return string(i)
}

// IsZero reports whether the identity is empty.
func (i Identity) IsZero() bool {
	return i == ""
}

// Account is what the authentication provider reports about a signed-in identity.
type Account struct {
	Identity    Identity // Provider-issued UID.
	Email       string   // Email the account signed in with.
	DisplayName string   // Display name stored at the provider, may be empty.
}
