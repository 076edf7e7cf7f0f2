package game

import "fmt"

// Contract is the bid level. The value doubles as the recorded contract index.
type Contract int

const (
	ContractPetite Contract = iota
	ContractGarde
	ContractGardeSans
	ContractGardeContre
)

var Contracts = [...]Contract{ContractPetite, ContractGarde, ContractGardeSans, ContractGardeContre}

func (c Contract) Valid() bool {
	return c >= ContractPetite && c <= ContractGardeContre
}

// Name is the key of the contract in the multiplier table.
func (c Contract) Name() string {
	switch c {
	case ContractPetite:
		return "Petite"
	case ContractGarde:
		return "Garde"
	case ContractGardeSans:
		return "Garde Sans"
	case ContractGardeContre:
		return "Garde Contre"
	default:
		return fmt.Sprintf("Contract(%d)", int(c))
	}
}

func (c Contract) String() string {
	return c.Name()
}

func ParseContract(name string) (Contract, bool) {
	for _, c := range Contracts {
		if c.Name() == name {
			return c, true
		}
	}
	return 0, false
}

// HandfulTier is the size class of a declared handful of trumps.
type HandfulTier int

const (
	HandfulNone HandfulTier = iota
	HandfulSimple
	HandfulDouble
	HandfulTriple
)

var HandfulTiers = [...]HandfulTier{HandfulNone, HandfulSimple, HandfulDouble, HandfulTriple}

func (t HandfulTier) Valid() bool {
	return t >= HandfulNone && t <= HandfulTriple
}

// Key is the tier name used by the handful value and trump-count tables.
func (t HandfulTier) Key() string {
	switch t {
	case HandfulNone:
		return "NONE"
	case HandfulSimple:
		return "SIMPLE"
	case HandfulDouble:
		return "DOUBLE"
	case HandfulTriple:
		return "TRIPLE"
	default:
		return fmt.Sprintf("HandfulTier(%d)", int(t))
	}
}

func (t HandfulTier) String() string {
	return t.Key()
}

func (t HandfulTier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid handful tier %d", int(t))
	}
	return []byte(t.Key()), nil
}

func (t *HandfulTier) UnmarshalText(b []byte) error {
	for _, candidate := range HandfulTiers {
		if candidate.Key() == string(b) {
			*t = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown handful tier %q", string(b))
}

// SlamOutcome values are ordered as the statistics buckets; SlamNone has no bucket.
type SlamOutcome int

const (
	SlamUnannouncedSuccess SlamOutcome = iota
	SlamAnnouncedFailure
	SlamAnnouncedSuccess
	SlamNone
)

// SlamBuckets is the number of tallied slam outcomes.
const SlamBuckets = 3

func (o SlamOutcome) String() string {
	switch o {
	case SlamUnannouncedSuccess:
		return "unannounced_success"
	case SlamAnnouncedFailure:
		return "announced_failure"
	case SlamAnnouncedSuccess:
		return "announced_success"
	case SlamNone:
		return "none"
	default:
		return fmt.Sprintf("SlamOutcome(%d)", int(o))
	}
}
