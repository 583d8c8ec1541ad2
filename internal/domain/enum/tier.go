package enum

import "database/sql/driver"

// Tier is a vendor's commission level
type Tier string

const (
	TierBronze  Tier = "bronze"
	TierSilver  Tier = "silver"
	TierGold    Tier = "gold"
	TierDiamond Tier = "diamond"
)

var tierRanks = map[Tier]int{
	TierBronze:  0,
	TierSilver:  1,
	TierGold:    2,
	TierDiamond: 3,
}

// ParseTier validates s against the known tiers
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if _, ok := tierRanks[t]; !ok {
		return "", &InvalidValueError{Type: "tier", Value: s}
	}
	return t, nil
}

// Rank orders tiers from bronze (0) to diamond (3)
func (t Tier) Rank() int {
	return tierRanks[t]
}

func (t Tier) String() string {
	return string(t)
}

// Label returns the pt-BR display name
func (t Tier) Label() string {
	switch t {
	case TierDiamond:
		return "Diamante"
	case TierGold:
		return "Ouro"
	case TierSilver:
		return "Prata"
	default:
		return "Bronze"
	}
}

func (t *Tier) UnmarshalJSON(data []byte) error {
	str, err := unmarshalString(data)
	if err != nil {
		return err
	}
	parsed, err := ParseTier(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Tier) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *Tier) Scan(value interface{}) error {
	str, err := scanString("Tier", value)
	if err != nil {
		return err
	}
	if str == "" {
		*t = TierBronze
		return nil
	}
	parsed, err := ParseTier(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
