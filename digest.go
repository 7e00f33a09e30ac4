package bridge

import "github.com/texforge/bridge/errors"

// FileDigest returns the digest of a named resource's contents. The
// hashing itself is the provider's: the bridge only routes the request.
func (s *State) FileDigest(name string) (Digest, error) {
	d, err := s.provider.FileDigest(name)
	if err != nil {
		return Digest{}, errors.ProviderFailure(errors.PhaseDigest, name, err)
	}
	return d, nil
}

// DataDigest returns the digest of an in-memory byte buffer, delegated
// entirely to the provider.
func (s *State) DataDigest(data []byte) (Digest, error) {
	d, err := s.provider.DataDigest(data)
	if err != nil {
		return Digest{}, errors.ProviderFailure(errors.PhaseDigest, "<data>", err)
	}
	return d, nil
}
