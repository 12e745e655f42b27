package rdf

import (
	"fmt"
	"strconv"
	"time"
)

// NewLiteral builds a typed literal from a Go value using its canonical
// lexical form. Supported kinds: string, bool, int, int32, int64,
// float32/float64, time.Time, and Literal (returned unchanged). Other
// values, including the other integer types, fall back to their fmt
// representation as xsd:string.
func NewLiteral(value any) Literal {
	switch v := value.(type) {
	case string:
		return Literal{Lexical: v, Datatype: XSDString}
	case bool:
		return Literal{Lexical: strconv.FormatBool(v), Datatype: XSDBoolean}
	case int:
		return Literal{Lexical: strconv.FormatInt(int64(v), 10), Datatype: XSDInteger}
	case int32:
		return Literal{Lexical: strconv.FormatInt(int64(v), 10), Datatype: XSDInteger}
	case int64:
		return Literal{Lexical: strconv.FormatInt(v, 10), Datatype: XSDInteger}
	case float32:
		return Literal{Lexical: strconv.FormatFloat(float64(v), 'g', -1, 32), Datatype: XSDDouble}
	case float64:
		return Literal{Lexical: strconv.FormatFloat(v, 'g', -1, 64), Datatype: XSDDouble}
	case time.Time:
		return Literal{Lexical: v.UTC().Format(time.RFC3339), Datatype: XSDDateTime}
	case Literal:
		return v
	default:
		return Literal{Lexical: fmt.Sprintf("%v", v), Datatype: XSDString}
	}
}

// NewLangLiteral builds a language-tagged literal.
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}

// NewTypedLiteral builds a literal with an explicit datatype.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}
