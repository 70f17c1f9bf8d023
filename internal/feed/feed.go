// Package feed decodes batches of sensor packages from text or JSON input.
//
// The text format has one package per line: a workout type code followed by
// its fields, separated by whitespace or commas. Blank lines and lines
// starting with '#' are ignored.
//
//	SWM 720 1 80 25 40
//	RUN 15000 1 75
//
// The JSON format is an array of objects with "type" and "data" keys, the
// shape produced by the export command.
package feed

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rcliao/workout-tracker/internal/model"
)

// Decode reads every package from r. The format is chosen by the first
// non-space byte: '[' selects JSON, anything else the text format.
func Decode(r io.Reader) ([]model.Package, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return DecodeJSON(trimmed)
	}
	return DecodeText(bytes.NewReader(data))
}

// DecodeJSON parses a JSON array of packages.
func DecodeJSON(data []byte) ([]model.Package, error) {
	var packages []model.Package
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	for i, p := range packages {
		if p.Type == "" {
			return nil, fmt.Errorf("package %d: missing type", i)
		}
	}
	return packages, nil
}

// DecodeText parses the line format.
func DecodeText(r io.Reader) ([]model.Package, error) {
	var packages []model.Package
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		packages = append(packages, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan feed: %w", err)
	}
	return packages, nil
}

// ParseLine parses a single "CODE f1 f2 ..." package.
func ParseLine(line string) (model.Package, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(parts) == 0 {
		return model.Package{}, fmt.Errorf("empty package")
	}
	fields, err := ParseFields(parts[1:])
	if err != nil {
		return model.Package{}, err
	}
	return model.Package{Type: parts[0], Data: fields}, nil
}

// ParseFields converts positional field strings to numbers.
func ParseFields(args []string) ([]float64, error) {
	fields := make([]float64, 0, len(args))
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid field %q: %w", a, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}
