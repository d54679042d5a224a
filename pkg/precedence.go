package foldeq

// Level is one rung of a precedence table. Operators binds single runes to
// the operation they build; Next is the next tighter level, nil for the
// tightest one, after which parsing falls through to unary operators.
type Level struct {
	Operators map[rune]Operation
	Next      *Level
}

// NewTable chains levels from loosest to tightest binding.
func NewTable(levels ...map[rune]Operation) *Level {
	var next *Level
	for i := len(levels) - 1; i >= 0; i-- {
		next = &Level{
			Operators: levels[i],
			Next:      next,
		}
	}

	return next
}

// DefaultTable is {+, -} -> {*, /} -> {^}.
var DefaultTable = NewTable(
	map[rune]Operation{
		'+': Addition,
		'-': Subtraction,
	},
	map[rune]Operation{
		'*': Multiplication,
		'/': Division,
	},
	map[rune]Operation{
		'^': Exponentiation,
	},
)

// Lookup reports the operation r builds at this level.
func (l *Level) Lookup(r rune) (Operation, bool) {
	if l == nil {
		return "", false
	}

	op, ok := l.Operators[r]
	return op, ok
}

// Depth is the number of levels from l down to the tightest one.
func (l *Level) Depth() int {
	n := 0
	for ; l != nil; l = l.Next {
		n++
	}

	return n
}
