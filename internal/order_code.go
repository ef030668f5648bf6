package internal

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/theplant/luhn"
)

const (
	// orderCodeDigits random digits followed by one Luhn check digit.
	orderCodeDigits = 9

	minMemoDigits = 4
	maxMemoDigits = 10
)

var (
	orderCodeSpace = big.NewInt(1_000_000_000)
	digitRun       = regexp.MustCompile(`\d+`)
)

// OrderCodes issues public order codes and finds them again in transfer memos.
type OrderCodes struct {
	prefix  string
	pattern *regexp.Regexp
	random  io.Reader
}

func NewOrderCodes(prefix string) *OrderCodes {
	return &OrderCodes{
		prefix:  prefix,
		pattern: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(prefix) + `(\d+)`),
		random:  rand.Reader,
	}
}

// Next returns a fresh code: prefix, 9 random digits and a Luhn check digit.
// Uniqueness is enforced by the store; callers retry on ErrOrderCodeTaken.
func (g *OrderCodes) Next() (string, error) {
	n, err := rand.Int(g.random, orderCodeSpace)
	if err != nil {
		return "", fmt.Errorf("generate order code: %w", err)
	}
	body := int(n.Int64())
	return fmt.Sprintf("%s%0*d%d", g.prefix, orderCodeDigits, body, luhn.CalculateLuhn(body)), nil
}

// Extract finds the order code in a free-text memo. Codes carrying the prefix win,
// otherwise any standalone run of 4-10 digits is taken as the numeric part.
func (g *OrderCodes) Extract(memo string) (string, bool) {
	compact := stripSpaces(memo)
	if compact == "" {
		return "", false
	}

	var prefixed []string
	for _, m := range g.pattern.FindAllStringSubmatch(compact, -1) {
		prefixed = append(prefixed, m[1])
	}
	if d, ok := pickCandidate(prefixed); ok {
		return g.prefix + d, true
	}

	var runs []string
	for _, r := range digitRun.FindAllString(compact, -1) {
		if len(r) >= minMemoDigits && len(r) <= maxMemoDigits {
			runs = append(runs, r)
		}
	}
	if d, ok := pickCandidate(runs); ok {
		return g.prefix + d, true
	}
	return "", false
}

// pickCandidate prefers a digit string shaped like an issued code.
func pickCandidate(candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	for _, c := range candidates {
		if isIssuedShape(c) {
			return c, true
		}
	}
	return candidates[0], true
}

func isIssuedShape(digits string) bool {
	if len(digits) != orderCodeDigits+1 {
		return false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return false
	}
	return luhn.Valid(n)
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
