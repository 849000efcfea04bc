package chem

import (
	"regexp"
	"strconv"
)

// formulaPattern matches element symbols with optional counts, e.g. the
// "Au4" and "W2" style formulas the cluster datasets use, as well as
// multi-element formulas like "TiO2".
var formulaPattern = regexp.MustCompile(`([A-Z][a-z]?)(\d*)`)

// Composition is a parsed chemical formula: element counts plus the
// symbols in order of first appearance, so tie-breaks stay deterministic.
type Composition struct {
	counts map[string]int
	order  []string
}

// ParseFormula extracts element counts from a formula string. Unparseable
// input yields an empty composition rather than an error; an entry with a
// garbage formula simply contributes nothing to formula-based analysis.
func ParseFormula(formula string) Composition {
	c := Composition{counts: make(map[string]int)}
	for _, m := range formulaPattern.FindAllStringSubmatch(formula, -1) {
		symbol, countStr := m[1], m[2]
		count := 1
		if countStr != "" {
			n, err := strconv.Atoi(countStr)
			if err != nil {
				continue
			}
			count = n
		}
		if _, seen := c.counts[symbol]; !seen {
			c.order = append(c.order, symbol)
		}
		c.counts[symbol] += count
	}
	return c
}

// Empty reports whether the composition carries no elements.
func (c Composition) Empty() bool {
	return len(c.counts) == 0
}

// Count returns the atom count for a symbol.
func (c Composition) Count(symbol string) int {
	return c.counts[symbol]
}

// Contains reports whether the composition includes the element.
func (c Composition) Contains(symbol string) bool {
	return c.counts[symbol] > 0
}

// Elements returns the symbols in order of first appearance.
func (c Composition) Elements() []string {
	return c.order
}

// TotalAtoms returns the total atom count, the "cluster size" for the
// Xn-style cluster formulas.
func (c Composition) TotalAtoms() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// PrimaryElement returns the most abundant element. Ties resolve to the
// element appearing first in the formula.
func (c Composition) PrimaryElement() (string, bool) {
	best, bestCount := "", 0
	for _, symbol := range c.order {
		if c.counts[symbol] > bestCount {
			best, bestCount = symbol, c.counts[symbol]
		}
	}
	return best, best != ""
}

// ElectronCount sums atomic numbers weighted by atom counts. Returns
// false if any element is outside the periodic-table data, since a
// partial sum would be misleading.
func (c Composition) ElectronCount() (int, bool) {
	total := 0
	for symbol, n := range c.counts {
		el, ok := LookupElement(symbol)
		if !ok {
			return 0, false
		}
		total += el.AtomicNumber * n
	}
	return total, !c.Empty()
}
