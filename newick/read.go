// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Read reads a single tree in newick format.
//
// Labels can be quoted with single quotes,
// and comments in square brackets are ignored.
func Read(r io.Reader) (*Clade, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("newick: %v", err)
	}
	p := &parser{s: string(b)}

	p.skip()
	if p.eof() {
		return nil, fmt.Errorf("newick: empty tree")
	}
	c, err := p.clade()
	if err != nil {
		return nil, err
	}
	p.skip()
	if p.eof() || p.s[p.pos] != ';' {
		return nil, p.errorf("expecting ';'")
	}
	return c, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.s)
}

func (p *parser) errorf(format string, a ...any) error {
	return fmt.Errorf("newick: at byte %d: %s", p.pos, fmt.Sprintf(format, a...))
}

// skip skips spaces and comments.
func (p *parser) skip() {
	for !p.eof() {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		case '[':
			end := strings.IndexByte(p.s[p.pos:], ']')
			if end < 0 {
				p.pos = len(p.s)
				return
			}
			p.pos += end + 1
		default:
			return
		}
	}
}

func (p *parser) clade() (*Clade, error) {
	c := &Clade{}
	p.skip()
	if !p.eof() && p.s[p.pos] == '(' {
		p.pos++
		for {
			d, err := p.clade()
			if err != nil {
				return nil, err
			}
			c.Children = append(c.Children, d)

			p.skip()
			if p.eof() {
				return nil, p.errorf("unexpected end of tree")
			}
			if p.s[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.s[p.pos] == ')' {
				p.pos++
				break
			}
			return nil, p.errorf("unexpected character %q", p.s[p.pos])
		}
	}

	name, err := p.label()
	if err != nil {
		return nil, err
	}
	c.Name = name

	p.skip()
	if !p.eof() && p.s[p.pos] == ':' {
		p.pos++
		p.skip()
		start := p.pos
		for !p.eof() && !strings.ContainsRune(" \t\n\r()[],;:", rune(p.s[p.pos])) {
			p.pos++
		}
		v, err := strconv.ParseFloat(p.s[start:p.pos], 64)
		if err != nil {
			return nil, p.errorf("invalid branch length %q", p.s[start:p.pos])
		}
		c.Length = v
		c.HasLength = true
	}
	return c, nil
}

func (p *parser) label() (string, error) {
	p.skip()
	if p.eof() {
		return "", nil
	}
	if p.s[p.pos] == '\'' {
		var sb strings.Builder
		p.pos++
		for {
			if p.eof() {
				return "", p.errorf("unterminated quoted label")
			}
			ch := p.s[p.pos]
			p.pos++
			if ch != '\'' {
				sb.WriteByte(ch)
				continue
			}
			if !p.eof() && p.s[p.pos] == '\'' {
				sb.WriteByte('\'')
				p.pos++
				continue
			}
			return sb.String(), nil
		}
	}

	start := p.pos
	for !p.eof() && !strings.ContainsRune("()[],;:", rune(p.s[p.pos])) {
		p.pos++
	}
	return strings.TrimSpace(p.s[start:p.pos]), nil
}
