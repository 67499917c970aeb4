package ls

type scanState int

const (
	stateCode scanState = iota
	stateString
	stateLineComment
	stateBlockComment
)

// isInStringLiteral reports whether position falls inside a string or
// template literal by scanning the file prefix. Single- and double-quoted
// strings terminate at an unescaped newline like the real scanner's recovery.
// Regex literals and template interpolation holes are not modeled; both err on
// the side of suppressing augmentation only inside genuine string text.
func isInStringLiteral(text string, position int) bool {
	if position > len(text) {
		position = len(text)
	}
	state := stateCode
	var quote byte
	for i := 0; i < position; i++ {
		c := text[i]
		switch state {
		case stateCode:
			switch c {
			case '"', '\'', '`':
				state = stateString
				quote = c
			case '/':
				if i+1 < len(text) {
					switch text[i+1] {
					case '/':
						state = stateLineComment
						i++
					case '*':
						state = stateBlockComment
						i++
					}
				}
			}
		case stateString:
			switch {
			case c == '\\':
				i++
			case c == quote:
				state = stateCode
			case c == '\n' && quote != '`':
				state = stateCode
			}
		case stateLineComment:
			if c == '\n' {
				state = stateCode
			}
		case stateBlockComment:
			if c == '*' && i+1 < len(text) && text[i+1] == '/' {
				state = stateCode
				i++
			}
		}
	}
	return state == stateString
}
