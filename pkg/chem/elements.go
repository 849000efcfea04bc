package chem

// Element holds the periodic-table data the analyzers need: position
// (group, period) for trend detection and atomic number for electron
// counting.
type Element struct {
	Symbol       string
	AtomicNumber int
	Group        int // 1-18; 0 for lanthanides/actinides
	Period       int
}

// Family is a coarse chemical family derived from periodic-table position.
type Family string

const (
	FamilyAlkaliMetal     Family = "alkali_metal"
	FamilyAlkalineEarth   Family = "alkaline_earth"
	FamilyTransitionMetal Family = "transition_metal"
	FamilyPostTransition  Family = "post_transition"
	FamilyMetalloid       Family = "metalloid"
	FamilyNonmetal        Family = "nonmetal"
	FamilyHalogen         Family = "halogen"
	FamilyNobleGas        Family = "noble_gas"
	FamilyUnknown         Family = "unknown"
)

// elements covers periods 1-6 plus Fr/Ra; that spans every species the
// cluster datasets carry. Lanthanides and actinides are deliberately
// absent (no group assignment, never seen in the dimers/tetramers data).
var elements = map[string]Element{
	"H": {"H", 1, 1, 1}, "He": {"He", 2, 18, 1},
	"Li": {"Li", 3, 1, 2}, "Be": {"Be", 4, 2, 2}, "B": {"B", 5, 13, 2},
	"C": {"C", 6, 14, 2}, "N": {"N", 7, 15, 2}, "O": {"O", 8, 16, 2},
	"F": {"F", 9, 17, 2}, "Ne": {"Ne", 10, 18, 2},
	"Na": {"Na", 11, 1, 3}, "Mg": {"Mg", 12, 2, 3}, "Al": {"Al", 13, 13, 3},
	"Si": {"Si", 14, 14, 3}, "P": {"P", 15, 15, 3}, "S": {"S", 16, 16, 3},
	"Cl": {"Cl", 17, 17, 3}, "Ar": {"Ar", 18, 18, 3},
	"K": {"K", 19, 1, 4}, "Ca": {"Ca", 20, 2, 4}, "Sc": {"Sc", 21, 3, 4},
	"Ti": {"Ti", 22, 4, 4}, "V": {"V", 23, 5, 4}, "Cr": {"Cr", 24, 6, 4},
	"Mn": {"Mn", 25, 7, 4}, "Fe": {"Fe", 26, 8, 4}, "Co": {"Co", 27, 9, 4},
	"Ni": {"Ni", 28, 10, 4}, "Cu": {"Cu", 29, 11, 4}, "Zn": {"Zn", 30, 12, 4},
	"Ga": {"Ga", 31, 13, 4}, "Ge": {"Ge", 32, 14, 4}, "As": {"As", 33, 15, 4},
	"Se": {"Se", 34, 16, 4}, "Br": {"Br", 35, 17, 4}, "Kr": {"Kr", 36, 18, 4},
	"Rb": {"Rb", 37, 1, 5}, "Sr": {"Sr", 38, 2, 5}, "Y": {"Y", 39, 3, 5},
	"Zr": {"Zr", 40, 4, 5}, "Nb": {"Nb", 41, 5, 5}, "Mo": {"Mo", 42, 6, 5},
	"Tc": {"Tc", 43, 7, 5}, "Ru": {"Ru", 44, 8, 5}, "Rh": {"Rh", 45, 9, 5},
	"Pd": {"Pd", 46, 10, 5}, "Ag": {"Ag", 47, 11, 5}, "Cd": {"Cd", 48, 12, 5},
	"In": {"In", 49, 13, 5}, "Sn": {"Sn", 50, 14, 5}, "Sb": {"Sb", 51, 15, 5},
	"Te": {"Te", 52, 16, 5}, "I": {"I", 53, 17, 5}, "Xe": {"Xe", 54, 18, 5},
	"Cs": {"Cs", 55, 1, 6}, "Ba": {"Ba", 56, 2, 6},
	"Hf": {"Hf", 72, 4, 6}, "Ta": {"Ta", 73, 5, 6}, "W": {"W", 74, 6, 6},
	"Re": {"Re", 75, 7, 6}, "Os": {"Os", 76, 8, 6}, "Ir": {"Ir", 77, 9, 6},
	"Pt": {"Pt", 78, 10, 6}, "Au": {"Au", 79, 11, 6}, "Hg": {"Hg", 80, 12, 6},
	"Tl": {"Tl", 81, 13, 6}, "Pb": {"Pb", 82, 14, 6}, "Bi": {"Bi", 83, 15, 6},
	"Po": {"Po", 84, 16, 6}, "At": {"At", 85, 17, 6}, "Rn": {"Rn", 86, 18, 6},
	"Fr": {"Fr", 87, 1, 7}, "Ra": {"Ra", 88, 2, 7},
}

// LookupElement returns the periodic-table data for a symbol.
func LookupElement(symbol string) (Element, bool) {
	el, ok := elements[symbol]
	return el, ok
}

// Family returns the coarse chemical family for the element.
func (e Element) Family() Family {
	switch {
	case e.Symbol == "H":
		return FamilyNonmetal
	case e.Group == 1:
		return FamilyAlkaliMetal
	case e.Group == 2:
		return FamilyAlkalineEarth
	case e.Group >= 3 && e.Group <= 12:
		return FamilyTransitionMetal
	case e.Group == 17:
		return FamilyHalogen
	case e.Group == 18:
		return FamilyNobleGas
	}

	switch e.Symbol {
	case "B", "Si", "Ge", "As", "Sb", "Te", "Po":
		return FamilyMetalloid
	case "C", "N", "O", "P", "S", "Se":
		return FamilyNonmetal
	case "Al", "Ga", "In", "Tl", "Sn", "Pb", "Bi":
		return FamilyPostTransition
	}
	return FamilyUnknown
}

// SameGroup reports whether two elements share a periodic-table group.
// Elements without a group assignment never match.
func SameGroup(a, b Element) bool {
	return a.Group != 0 && a.Group == b.Group
}
