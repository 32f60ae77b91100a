package chains

import (
	"strconv"
	"strings"
	"unicode"
)

// Identifier selects a chain either by numeric chain ID or by network name.
// The two cases are ChainID and NetworkName; a nil Identifier selects
// DefaultChainID.
type Identifier interface {
	isIdentifier()
	String() string
}

// ChainID is an EIP-155 chain ID.
type ChainID int64

// NetworkName is a case-insensitive network alias such as "flow".
type NetworkName string

func (ChainID) isIdentifier()     {}
func (NetworkName) isIdentifier() {}

func (c ChainID) String() string {
	return strconv.FormatInt(int64(c), 10)
}

func (n NetworkName) String() string {
	return string(n)
}

// normalized returns the lookup key for the name.
func (n NetworkName) normalized() string {
	return strings.ToLower(string(n))
}

// ParseIdentifier converts free text into an Identifier. Strict base-10
// integers become a ChainID, anything else a NetworkName.
func ParseIdentifier(s string) Identifier {
	s = strings.TrimSpace(s)

	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ChainID(id)
	}

	return NetworkName(s)
}

// parseLeadingInt reads a base-10 integer prefix the way a lenient parser
// does: leading whitespace, an optional sign, then at least one digit.
// Trailing characters are ignored ("12abc" yields 12).
func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}
