package modetype

// Registry maps a format tree's one-letter level code (format.Dense's
// Code(), etc.) to the ModeType implementing that level's storage
// strategy. It is populated once at init time so that the lower package
// can resolve a format tree into a chain of ModeType instances without
// hardcoding the mapping itself.
var Registry = map[byte]*ModeType{}

func init() {
	Registry['d'] = Dense
	Registry['s'] = Sparse
	Registry['f'] = Fixed
	Registry['r'] = Replicated
	Registry['v'] = Values
}

// Lookup returns the ModeType registered for code, or nil if none is
// registered.
func Lookup(code byte) *ModeType {
	return Registry[code]
}
