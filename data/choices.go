package data

type ChoiceField int

const (
	TravellerType ChoiceField = iota
	Cabin
)

var TravellerTypes = []string{"Solo Leisure", "Couple Leisure", "Family Leisure", "Business"}

var Cabins = []string{"Economy Class", "Business Class", "Premium Economy", "First Class"}

func (f ChoiceField) Name() string {
	switch f {
	case TravellerType:
		return "traveller_type"
	case Cabin:
		return "cabin"
	}
	return ""
}

func (f ChoiceField) Label() string {
	switch f {
	case TravellerType:
		return "Traveller Type"
	case Cabin:
		return "Cabin"
	}
	return ""
}

func (f ChoiceField) Options() []string {
	switch f {
	case TravellerType:
		return TravellerTypes
	case Cabin:
		return Cabins
	}
	return nil
}

// ParseChoice returns s if it is one of options, and otherwise the first
// option, which is what the dropdown shows by default.
func ParseChoice(options []string, s string) string {
	for _, o := range options {
		if o == s {
			return s
		}
	}
	if len(options) == 0 {
		return ""
	}
	return options[0]
}
