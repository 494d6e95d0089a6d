package hunk

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	numberCode = iota
	commaCode
	addCode
	deleteCode
	changeCode
)

var (
	numberToken = parsly.NewToken(numberCode, "Number", &numberMatcher{})
	commaToken  = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
	addToken    = parsly.NewToken(addCode, "a", matcher.NewByte('a'))
	deleteToken = parsly.NewToken(deleteCode, "d", matcher.NewByte('d'))
	changeToken = parsly.NewToken(changeCode, "c", matcher.NewByte('c'))
)

// numberMatcher matches a run of decimal digits.
type numberMatcher struct{}

func (m *numberMatcher) Match(cursor *parsly.Cursor) int {
	matched := 0
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		if c := cursor.Input[i]; c < '0' || c > '9' {
			break
		}
		matched++
	}
	return matched
}
