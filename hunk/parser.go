package hunk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/parsly"
)

// ErrUnsupported is returned for normal-format constructs this package does
// not produce, such as "c" (change) blocks.
var ErrUnsupported = errors.New("unsupported normal diff operation")

// Parse reads normal-format text made of "a" and "d" blocks.
// "\ No newline at end of file" markers are skipped.
func Parse(data []byte) ([]Block, error) {
	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	var ret []Block
	for i := 0; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], `\`) {
			continue
		}
		block, err := parseHeader([]byte(lines[i]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid header %q: %w", i+1, lines[i], err)
		}
		count := block.To.Len()
		if block.Op == OpDelete {
			count = block.From.Len()
		}
		if remaining := len(lines) - i - 1; count > remaining {
			return nil, fmt.Errorf("block %s: expected %d lines, only %d left", block.Header(), count, remaining)
		}
		prefix := block.Op.prefix()
		block.Lines = make([]string, 0, count)
		for len(block.Lines) < count {
			i++
			if i >= len(lines) {
				return nil, fmt.Errorf("block %s: expected %d lines, got %d", block.Header(), count, len(block.Lines))
			}
			if strings.HasPrefix(lines[i], `\`) {
				continue
			}
			content, ok := strings.CutPrefix(lines[i], prefix)
			if !ok {
				return nil, fmt.Errorf("line %d: expected %q prefix in block %s", i+1, prefix, block.Header())
			}
			block.Lines = append(block.Lines, content)
		}
		ret = append(ret, block)
	}
	return ret, nil
}

// parseHeader parses "<from>(a|d)<to>" where each side is "n" or "n,m".
func parseHeader(input []byte) (Block, error) {
	cursor := parsly.NewCursor("", input, 0)
	left, err := parsePosition(cursor)
	if err != nil {
		return Block{}, err
	}

	var op Op
	matched := cursor.MatchAny(addToken, deleteToken, changeToken)
	switch matched.Code {
	case addCode:
		op = OpAdd
	case deleteCode:
		op = OpDelete
	case changeCode:
		return Block{}, fmt.Errorf("%w: change block", ErrUnsupported)
	default:
		return Block{}, cursor.NewError(addToken, deleteToken)
	}

	right, err := parsePosition(cursor)
	if err != nil {
		return Block{}, err
	}
	if cursor.Pos < cursor.InputSize {
		return Block{}, fmt.Errorf("unexpected trailing input at %d", cursor.Pos)
	}

	block := Block{Op: op}
	if op == OpDelete {
		if block.From, err = left.lines(); err != nil {
			return Block{}, err
		}
		if block.To, err = right.anchor(); err != nil {
			return Block{}, err
		}
		return block, nil
	}
	if block.From, err = left.anchor(); err != nil {
		return Block{}, err
	}
	if block.To, err = right.lines(); err != nil {
		return Block{}, err
	}
	return block, nil
}

// position is one side of a header, as written (1-based, inclusive).
type position struct {
	first   int
	last    int
	isRange bool
}

func (p position) lines() (Range, error) {
	if p.first < 1 || p.last < p.first {
		return Range{}, fmt.Errorf("invalid line range %d,%d", p.first, p.last)
	}
	return Range{Start: p.first - 1, End: p.last}, nil
}

func (p position) anchor() (Range, error) {
	if p.isRange {
		return Range{}, fmt.Errorf("expected a single line number, got %d,%d", p.first, p.last)
	}
	return Range{Start: p.first, End: p.first}, nil
}

func parsePosition(cursor *parsly.Cursor) (position, error) {
	first, err := parseNumber(cursor)
	if err != nil {
		return position{}, err
	}
	ret := position{first: first, last: first}
	matched := cursor.MatchOne(commaToken)
	if matched.Code != commaToken.Code {
		return ret, nil
	}
	if ret.last, err = parseNumber(cursor); err != nil {
		return position{}, err
	}
	ret.isRange = true
	return ret, nil
}

func parseNumber(cursor *parsly.Cursor) (int, error) {
	matched := cursor.MatchOne(numberToken)
	if matched.Code != numberToken.Code {
		return 0, cursor.NewError(numberToken)
	}
	return strconv.Atoi(matched.Text(cursor))
}
