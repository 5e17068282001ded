package db_models

// Tier is the subscription access level. It doubles as the plan code and as
// the access tag on training videos.
type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

func ValidTier(s string) bool {
	switch Tier(s) {
	case TierBronze, TierSilver, TierGold:
		return true
	}
	return false
}

// Allows reports whether a caller with tier t may access a resource tagged
// with the given tier. Kept as an explicit enumeration rather than a numeric
// comparison so adding a tier forces every case to be revisited.
func (t Tier) Allows(resource Tier) bool {
	switch t {
	case TierGold:
		return resource == TierBronze || resource == TierSilver || resource == TierGold
	case TierSilver:
		return resource == TierBronze || resource == TierSilver
	case TierBronze:
		return resource == TierBronze
	}
	return false
}

// Accessible returns the downward-closed set of tiers t may reach, for use
// in listing queries.
func (t Tier) Accessible() []Tier {
	switch t {
	case TierGold:
		return []Tier{TierBronze, TierSilver, TierGold}
	case TierSilver:
		return []Tier{TierBronze, TierSilver}
	case TierBronze:
		return []Tier{TierBronze}
	}
	return nil
}
