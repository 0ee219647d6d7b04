package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo         Code = 1000
	LexTokenInfo    Code = 1001
	LexTokenTooLong Code = 1002

	// Ошибки вычисления
	EvalInfo         Code = 3000
	EvalArity        Code = 3001
	EvalInvalidToken Code = 3002
	EvalNonFinite    Code = 3003 // division by zero and friends (warning)

	// Ошибки I/O
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:      "Unknown error",
	LexInfo:          "Lexical information",
	LexTokenInfo:     "Token classification",
	LexTokenTooLong:  "Token too long",
	EvalInfo:         "Evaluation information",
	EvalArity:        "Incorrect number of arguments",
	EvalInvalidToken: "Invalid number",
	EvalNonFinite:    "Non-finite result",
	IOLoadFileError:  "I/O load file error",
	IOCacheError:     "Result cache error",
	ObsInfo:          "Observability information",
	ObsTimings:       "Phase timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
