package scenario

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	lineSep  = "\n"
	fieldSep = ";"
	pairSep  = ","
)

// MalformedLineError reports a scenario line that does not match the grammar.
type MalformedLineError struct {
	Line   int // 1-based
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed scenario line %d %q: %s", e.Line, e.Text, e.Reason)
}

// Decode parses scenario text into a variable list. Every line must carry a name, an
// interpolation tag and at least one time,value pair.
func Decode(text string) (List, error) {
	lines := strings.Split(text, lineSep)
	out := make(List, 0, len(lines))
	for i, line := range lines {
		v, err := decodeLine(line)
		if err != nil {
			return nil, &MalformedLineError{Line: i + 1, Text: line, Reason: err.Error()}
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeLine(line string) (Variable, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 3 {
		return Variable{}, fmt.Errorf("expected name;interpolation;time,value..., got %d fields", len(fields))
	}
	if fields[0] == "" {
		return Variable{}, fmt.Errorf("empty variable name")
	}
	if strings.Contains(fields[0], pairSep) {
		return Variable{}, fmt.Errorf("variable name %q contains %q", fields[0], pairSep)
	}
	if !ValidText(fields[0]) {
		return Variable{}, fmt.Errorf("variable name %q contains characters XML cannot hold", fields[0])
	}
	if !ValidText(fields[1]) {
		return Variable{}, fmt.Errorf("interpolation %q contains characters XML cannot hold", fields[1])
	}
	series := make([]Point, 0, len(fields)-2)
	for _, seg := range fields[2:] {
		p, err := decodePair(seg)
		if err != nil {
			return Variable{}, err
		}
		series = append(series, p)
	}
	return Variable{Name: fields[0], Interpolation: fields[1], Series: series}, nil
}

func decodePair(seg string) (Point, error) {
	tokens := strings.Split(seg, pairSep)
	if len(tokens) != 2 {
		return Point{}, fmt.Errorf("pair %q must be time,value", seg)
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(tokens[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("pair %q: bad time: %w", seg, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(tokens[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("pair %q: bad value: %w", seg, err)
	}
	return Point{Time: t, Value: v}, nil
}

// Encode renders a variable list in the scenario grammar.
func Encode(l List) string {
	var b strings.Builder
	for i, v := range l {
		if i > 0 {
			b.WriteString(lineSep)
		}
		encodeVariable(&b, v)
	}
	return b.String()
}

func encodeVariable(b *strings.Builder, v Variable) {
	b.WriteString(v.Name)
	b.WriteString(fieldSep)
	b.WriteString(v.Interpolation)
	for _, p := range v.Series {
		b.WriteString(fieldSep)
		b.WriteString(formatFloat(p.Time))
		b.WriteString(pairSep)
		b.WriteString(formatFloat(p.Value))
	}
}

// formatFloat writes the shortest decimal that parses back to f, always with '.'
// and never in exponent form.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
