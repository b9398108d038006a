package secrets

// Secret is a named plaintext value read from the environment.
type Secret struct {
	Name  string
	Value string

	// Set reports whether the variable existed at all. An existing but
	// empty variable is skipped the same way as a missing one.
	Set bool
}

// Publishable reports whether the secret has a value worth uploading.
func (s Secret) Publishable() bool {
	return s.Value != ""
}

// Lookup returns the value of an environment variable and whether it exists.
type Lookup func(name string) (string, bool)

// FromEnvironment resolves each name through lookup, keeping the order of names.
func FromEnvironment(names []string, lookup Lookup) []Secret {
	out := make([]Secret, 0, len(names))
	for _, name := range names {
		value, ok := lookup(name)
		out = append(out, Secret{Name: name, Value: value, Set: ok})
	}
	return out
}
