package reports

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// PDFTextProcessingNote is printed under the PDF summary.
const PDFTextProcessingNote = "Note: Devanagari text has been transliterated to Latin script for PDF compatibility."

const (
	devanagariFirst = 'ऀ'
	devanagariLast  = 'ॿ'
	placeholder     = '?'
)

// devanagariToLatin covers the common Marathi/Hindi letters. Read-only after init.
var devanagariToLatin = map[rune]string{
	// Vowels
	'अ': "a", 'आ': "aa", 'इ': "i", 'ई': "ii", 'उ': "u",
	'ऊ': "uu", 'ए': "e", 'ऐ': "ai", 'ओ': "o", 'औ': "au",

	// Consonants
	'क': "ka", 'ख': "kha", 'ग': "ga", 'घ': "gha", 'ङ': "nga",
	'च': "cha", 'छ': "chha", 'ज': "ja", 'झ': "jha", 'ञ': "nja",
	'ट': "ta", 'ठ': "tha", 'ड': "da", 'ढ': "dha", 'ण': "na",
	'त': "ta", 'थ': "tha", 'द': "da", 'ध': "dha", 'न': "na",
	'प': "pa", 'फ': "pha", 'ब': "ba", 'भ': "bha", 'म': "ma",
	'य': "ya", 'र': "ra", 'ल': "la", 'व': "va",
	'श': "sha", 'ष': "sha", 'स': "sa", 'ह': "ha",

	// Vowel signs (matras)
	'ा': "aa", 'ि': "i", 'ी': "ii", 'ु': "u", 'ू': "uu",
	'े': "e", 'ै': "ai", 'ो': "o", 'ौ': "au",

	// Digits
	'०': "0", '१': "1", '२': "2", '३': "3", '४': "4",
	'५': "5", '६': "6", '७': "7", '८': "8", '९': "9",

	'्': "",   // virama drops the inherent vowel
	'ं': "n",  // anusvara
	'ः': "h",  // visarga
	'।': ".",  // danda
	'॥': "||", // double danda
}

var punctuationReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
	"—", "-", "–", "-",
	"…", "...",
)

func foldToASCII(r rune) rune {
	if r >= utf8.RuneSelf {
		return placeholder
	}
	return r
}

var asciiFold = runes.Map(foldToASCII)

// TransliterateDevanagari replaces characters of the Devanagari block with
// Latin approximations; unknown ones become '?'. Other scripts pass through.
func TransliterateDevanagari(text string) string {
	if text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if latin, ok := devanagariToLatin[r]; ok {
			b.WriteString(latin)
			continue
		}
		if r >= devanagariFirst && r <= devanagariLast {
			b.WriteRune(placeholder)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ProcessPDFText makes text safe for the PDF core fonts. The result is pure
// ASCII and running it twice changes nothing.
func ProcessPDFText(text string) string {
	if text == "" {
		return text
	}

	out := TransliterateDevanagari(text)
	out = punctuationReplacer.Replace(out)

	folded, _, err := transform.String(asciiFold, out)
	if err != nil {
		return strings.Map(foldToASCII, out)
	}
	return folded
}
