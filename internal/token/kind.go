package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates a token that is neither a number nor an operator.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Number represents an unsigned decimal literal (ASCII digits only).
	Number

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Number:  "Number",
	Plus:    "Plus",
	Minus:   "Minus",
	Star:    "Star",
	Slash:   "Slash",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsOperator reports whether k is one of the four binary operators.
func (k Kind) IsOperator() bool {
	switch k {
	case Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}

// Symbol returns the source spelling of an operator kind, or "" otherwise.
func (k Kind) Symbol() string {
	switch k {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	default:
		return ""
	}
}

// Classify maps raw token text onto a Kind.
// Number iff text is non-empty and every byte is '0'..'9'; an operator iff
// text is exactly one of + - * /; Invalid otherwise.
func Classify(text string) Kind {
	if len(text) == 1 {
		switch text[0] {
		case '+':
			return Plus
		case '-':
			return Minus
		case '*':
			return Star
		case '/':
			return Slash
		}
	}
	if text == "" {
		return Invalid
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return Invalid
		}
	}
	return Number
}
