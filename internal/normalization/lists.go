package normalization

// CodeLists holds the reference code sets consulted during
// classification. The lists are immutable once built and injected into
// the classifier so they can be revised without touching the rules.
type CodeLists struct {
	nacNotPublic       map[string]struct{}
	nacPartiallyPublic map[string]struct{}
	transmissibleCodes map[string]struct{}
}

// NewCodeLists builds a CodeLists from the not-public NAC codes, the
// partially-public NAC codes, and the decision codes transmissible to
// the Cour de cassation.
func NewCodeLists(nacNotPublic, nacPartiallyPublic, transmissible []string) CodeLists {
	return CodeLists{
		nacNotPublic:       toSet(nacNotPublic),
		nacPartiallyPublic: toSet(nacPartiallyPublic),
		transmissibleCodes: toSet(transmissible),
	}
}

// DefaultCodeLists returns the built-in reference lists for tribunal
// judiciaire decisions.
func DefaultCodeLists() CodeLists {
	return NewCodeLists(
		[]string{
			"11A", "11B", "11D", "11E", "11Z",
			"13A", "13B", "13C", "13D", "13E", "13Z",
			"14F", "15A", "15B", "15C", "15D", "15E", "15F", "15G", "15H", "15Z",
			"16A", "16B", "16C", "16D", "16E", "16F", "16G", "16H", "16I", "16J",
			"16K", "16M", "16N", "16O", "16P", "16Q", "16R", "16S", "16X",
			"17A", "17B", "17D", "17E", "17F", "17G", "17H", "17I", "17J", "17K",
			"17L", "17M", "17N", "17O", "17P", "17Q", "17R", "17S", "17T", "17X",
			"18A", "18B", "18C", "18D", "18E", "18F", "18G", "18H", "18X", "18Z",
			"20G", "21F", "22A", "22B", "22C", "22D", "22E", "22F",
			"23C", "23D", "23E", "23F", "23G", "23Z",
			"24A", "24B", "24C", "24D", "24E", "24F", "24I", "24J", "24K", "24L",
			"24M", "24N", "24Z",
			"26D", "27A", "27B", "27C", "27D", "27E", "27F", "27G", "27H", "27I",
			"27J", "27K", "27L", "27Z", "70J",
			"97A", "97B", "97E", "97G", "97P",
		},
		[]string{
			"11C", "14A", "14B", "14C", "14D", "14E", "14Z",
			"20A", "20B", "20C", "20D", "20E", "20F", "20H", "20I", "20J", "20K",
			"20L", "20X", "23A", "23B", "26A", "26B", "26C", "26E", "26F", "26G",
			"26H", "26I", "26J", "26K", "26L", "26M", "26N", "26O", "26Z",
		},
		[]string{
			"0aA", "0bB", "0cX", "0eC",
			"10A", "10B", "10C", "10D", "10E",
			"20A", "20B", "20C",
			"30A", "30B", "30C", "30D", "30E", "30F", "30G", "30H",
			"40A", "40B", "40C", "40D", "40E", "40F", "40G", "40H", "40I", "40J",
			"50A", "50B", "50C", "50D", "50E", "50F", "50G",
			"55A", "55B",
			"60A", "60B",
		},
	)
}

// NACNotPublic reports whether code marks the decision as not public.
func (c CodeLists) NACNotPublic(code string) bool {
	_, ok := c.nacNotPublic[code]
	return ok
}

// NACPartiallyPublic reports whether code marks the decision as
// partially public.
func (c CodeLists) NACPartiallyPublic(code string) bool {
	_, ok := c.nacPartiallyPublic[code]
	return ok
}

// Transmissible reports whether the decision code may be transmitted
// to the Cour de cassation.
func (c CodeLists) Transmissible(code string) bool {
	_, ok := c.transmissibleCodes[code]
	return ok
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
