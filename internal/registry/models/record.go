package models

// IdentityRecord is one row of the national identity registry the portal
// validates applications against.
//
// Records are seeded at process start and never mutated. The Valid flag is a
// precomputed eligibility hint carried over from the registry feed; lifecycle
// logic deliberately ignores it and checks declared income against the scheme
// ceiling at approval time instead.
type IdentityRecord struct {
	IdentityNumber string `json:"identity_number"`
	Name           string `json:"name"`
	Income         int    `json:"income"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phone_number"`
	Valid          bool   `json:"valid"`
}
