package grocery

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedIngredient is the result of parsing one free-text ingredient line.
// Quantity and Unit are nil when no quantity or recognized unit was found;
// Name always carries the remaining (or entire) trimmed text.
type ParsedIngredient struct {
	Quantity *float64
	Unit     *string
	Name     string
}

// unitPatterns is the controlled vocabulary of measurement-unit spellings.
// Each entry is a regex alternative; plural forms fold into the singular via
// optional suffixes so one alternation covers both.
var unitPatterns = []string{
	"cups?", "tbsp", "tablespoons?", "tsp", "teaspoons?",
	"oz", "ounces?", "lbs?", "pounds?", "g", "grams?", "kg",
	"ml", "liters?", "l", "qt", "quarts?", "pt", "pints?",
	"slices?", "pieces?", "cloves?", "stalks?", "heads?", "cans?",
	"packages?", "bags?", "bunches?", "sprigs?", "pinch(?:es)?",
}

// quantityChars matches the characters a quantity expression may contain:
// digits, decimal point, fraction slash, whitespace, and unicode fraction
// glyphs.
const quantityChars = `[\d./\s¼½¾⅓⅔⅛⅜⅝⅞]`

var (
	// unitRegex matches "<quantity> <unit>[.] <name>" against the full
	// vocabulary, case-insensitively.
	unitRegex = regexp.MustCompile(
		`(?i)^(` + quantityChars + `+)\s*(` + strings.Join(unitPatterns, "|") + `)\.?\s+(.+)$`,
	)

	// quantityRegex matches "<quantity> <name>" with no recognized unit.
	quantityRegex = regexp.MustCompile(`^(` + quantityChars + `+)\s+(.+)$`)

	// glyphStripper removes fraction glyphs from a quantity expression so
	// the ASCII remainder can be parsed separately.
	glyphStripper = regexp.MustCompile(`[¼½¾⅓⅔⅛⅜⅝⅞]`)
)

// fractionGlyphs maps unicode vulgar-fraction glyphs to their values. The
// thirds round to three decimals to match the values users see rendered in
// the grocery list.
var fractionGlyphs = map[string]float64{
	"¼": 0.25, "½": 0.5, "¾": 0.75,
	"⅓": 0.333, "⅔": 0.667,
	"⅛": 0.125, "⅜": 0.375, "⅝": 0.625, "⅞": 0.875,
}

// ParseFraction converts a free-text quantity expression into a number.
// Each distinct fraction glyph present contributes its value once, then
// the remaining text parses as "a/b" (with an optional leading whole
// number, so "1 1/2" yields 1.5) or a plain float. The function is total:
// unparseable input contributes 0, so an input with no numeric content
// yields 0 rather than an error.
func ParseFraction(s string) float64 {
	var result float64
	cleaned := strings.TrimSpace(s)

	for glyph, val := range fractionGlyphs {
		if strings.Contains(cleaned, glyph) {
			result += val
		}
	}

	numeric := strings.TrimSpace(glyphStripper.ReplaceAllString(cleaned, ""))
	if numeric == "" {
		return result
	}

	if strings.Contains(numeric, "/") {
		// A leading whole number may precede the fraction ("1 1/2").
		if fields := strings.Fields(numeric); len(fields) == 2 && strings.Contains(fields[1], "/") {
			if whole, err := strconv.ParseFloat(fields[0], 64); err == nil {
				result += whole
			}
			numeric = fields[1]
		}
		num, den, _ := strings.Cut(numeric, "/")
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN == nil && errD == nil && d != 0 {
			result += n / d
		}
		return result
	}

	if f, err := strconv.ParseFloat(numeric, 64); err == nil {
		result += f
	}
	return result
}

// NormalizeUnit maps unit synonyms to a canonical short form. Unrecognized
// units pass through lowercased; nil passes through. Idempotent: canonical
// forms map to themselves.
func NormalizeUnit(unit *string) *string {
	if unit == nil {
		return nil
	}
	lower := strings.ToLower(*unit)
	canonical := map[string]string{
		"tablespoons": "tbsp", "tablespoon": "tbsp",
		"teaspoons": "tsp", "teaspoon": "tsp",
		"cups":   "cup",
		"ounces": "oz", "ounce": "oz",
		"pounds": "lb", "pound": "lb",
		"grams": "g", "gram": "g",
		"kilograms":   "kg",
		"milliliters": "ml",
		"liters":      "L",
		"l":           "L",
	}
	if short, ok := canonical[lower]; ok {
		return &short
	}
	return &lower
}

// ParseIngredient splits one raw ingredient line into quantity, unit and
// name. Three forms are tried in order, first match wins:
//
//  1. "2 cups diced tomatoes": quantity, recognized unit, name.
//  2. "2 chicken breasts": positive quantity, no unit, name.
//  3. "olive oil": the whole line is the name.
//
// The worst case for malformed input is form 3, never an error.
func ParseIngredient(line string) ParsedIngredient {
	cleaned := strings.TrimSpace(line)

	if m := unitRegex.FindStringSubmatch(cleaned); m != nil {
		qty := ParseFraction(m[1])
		unit := strings.ToLower(m[2])
		return ParsedIngredient{
			Quantity: &qty,
			Unit:     &unit,
			Name:     strings.TrimSpace(m[3]),
		}
	}

	if m := quantityRegex.FindStringSubmatch(cleaned); m != nil {
		if qty := ParseFraction(m[1]); qty > 0 {
			return ParsedIngredient{
				Quantity: &qty,
				Name:     strings.TrimSpace(m[2]),
			}
		}
	}

	return ParsedIngredient{Name: cleaned}
}
