// measurement scanner
// A single pass over one string, modelled on the text/template lexer.

package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const eof = -1

const digits = "0123456789"

// scanner holds the state of a scan over one measurement string.
type scanner struct {
	input string // the string being scanned
	pos   int    // current position in the input
	width int    // width of last rune read from input
}

// next returns the next rune in the input.
func (s *scanner) next() rune {
	if s.pos >= len(s.input) {
		s.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.input[s.pos:])
	s.width = w
	s.pos += w
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (s *scanner) backup() {
	s.pos -= s.width
}

// accept consumes the next rune if it's from the valid set.
func (s *scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, s.next()) {
		return true
	}
	s.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (s *scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, s.next()) {
	}
	s.backup()
}

// acceptFunc consumes the next rune if f reports true for it.
func (s *scanner) acceptFunc(f func(rune) bool) bool {
	if r := s.next(); r != eof && f(r) {
		return true
	}
	s.backup()
	return false
}

// acceptFold consumes lit if the input continues with it under case folding.
func (s *scanner) acceptFold(lit string) bool {
	rest := s.input[s.pos:]
	for i := range rest {
		if i > 0 && strings.EqualFold(rest[:i], lit) {
			s.pos += i
			return true
		}
	}
	if strings.EqualFold(rest, lit) {
		s.pos += len(rest)
		return true
	}
	return false
}

func (s *scanner) atEOF() bool {
	return s.pos >= len(s.input)
}

// scanMantissa consumes an optional sign and a run of digits and decimal
// points. The result may be empty; more than one point is left for
// strconv to reject.
func (s *scanner) scanMantissa() string {
	start := s.pos
	s.accept("+-")
	s.acceptRun(digits + ".")
	return s.input[start:s.pos]
}

// acceptLetters consumes between 1 and limit runes for which f reports true.
func (s *scanner) acceptLetters(limit int, f func(rune) bool) bool {
	n := 0
	for n < limit && s.acceptFunc(f) {
		n++
	}
	return n > 0
}

// tokenScanner consumes a unit token at the current position and reports
// whether one was found.
type tokenScanner func(*scanner) bool

// split finds the longest suffix of input of the form
// `mantissa [space] token`. Text before the suffix is ignored. ok is false if
// no suffix has that shape.
func split(input string, scanToken tokenScanner) (mantissa, token string, ok bool) {
	for start := range input {
		if mantissa, token, ok = splitAt(input, start, scanToken); ok {
			return
		}
	}
	return "", "", false
}

func splitAt(input string, start int, scanToken tokenScanner) (mantissa, token string, ok bool) {
	s := &scanner{input: input, pos: start}
	mantissa = s.scanMantissa()
	s.acceptFunc(unicode.IsSpace)
	tokenStart := s.pos
	if !scanToken(s) || !s.atEOF() {
		return "", "", false
	}
	return mantissa, input[tokenStart:s.pos], true
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// micro is the Greek small letter mu. Input is NFKC normalised before
// scanning, which folds the micro sign (U+00B5) into it.
const micro = 'μ'

func isMassRune(r rune) bool {
	return isASCIILetter(r) || r == micro
}

// a single letter: F, C, K or R
func scanTemperatureToken(s *scanner) bool {
	return s.acceptFunc(isASCIILetter)
}

// one to three letters and an optional digit, e.g. "l", "gal", "cm3", or one
// of the two symbol units
func scanVolumeToken(s *scanner) bool {
	if s.acceptFold("μl") || s.acceptFold("ʒ") {
		return true
	}
	if !s.acceptLetters(3, isASCIILetter) {
		return false
	}
	s.accept(digits)
	return true
}

// one to three letters, mu included
func scanMassToken(s *scanner) bool {
	return s.acceptLetters(3, isMassRune)
}
