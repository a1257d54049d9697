package edit

import (
	"fmt"
	"strings"
)

// Split breaks a command line into the command word and its
// arguments. The command word is lowercased; arguments go through
// Tokenize. An all-blank line yields an empty command.
func Split(line string) (cmd string, args []string, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil, nil
	}
	cmd = line
	argbuf := ""
	if i := strings.IndexByte(line, ' '); i != -1 {
		cmd, argbuf = line[:i], line[i+1:]
	}
	args, err = Tokenize(argbuf)
	if err != nil {
		return "", nil, err
	}
	return strings.ToLower(cmd), args, nil
}

// Tokenize splits an argument string on spaces. Double quotes group
// text containing spaces, and backslash escapes \" \\ and \n embed a
// quote, a backslash, and a newline. A quoted pair of quotes yields
// an empty argument.
func Tokenize(buf string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		started bool
		quoted  bool
		escaped bool
	)
	for i := 0; i < len(buf); i++ {
		c := buf[i]
		if escaped {
			switch c {
			case '"', '\\':
				cur.WriteByte(c)
			case 'n':
				cur.WriteByte('\n')
			default:
				return nil, fmt.Errorf("%w: unknown escape character %q at %d", ErrSyntax, c, i+1)
			}
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
			started = true
		case '"':
			quoted = !quoted
			started = true
		case ' ':
			if quoted {
				cur.WriteByte(c)
				continue
			}
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteByte(c)
			started = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("%w: reached end of line trying to match quote", ErrSyntax)
	}
	if escaped {
		return nil, fmt.Errorf("%w: trailing escape character", ErrSyntax)
	}
	if started {
		args = append(args, cur.String())
	}
	return args, nil
}
