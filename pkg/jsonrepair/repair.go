// Package jsonrepair extracts and heuristically repairs a JSON object embedded
// in free-form model output. Failure here is a normal, expected outcome given
// the nature of LLM responses; callers fall back to deterministic generation.
package jsonrepair

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrMalformedResponse signals that no candidate span could be coerced into
// valid JSON within the attempt ceiling.
var ErrMalformedResponse = errors.New("malformed model response")

// maxParseAttempts bounds how many candidate spans Repair will try.
const maxParseAttempts = 4

// Repair locates a {...} span inside raw and runs it through the repair
// passes until one parses. A candidate that is already valid is returned
// byte-for-byte, so clean JSON round-trips untouched and the passes only
// ever see broken input.
func Repair(raw string) (json.RawMessage, error) {
	cleaned := StripFences(raw)

	attempts := 0
	for _, candidate := range Candidates(cleaned) {
		if attempts >= maxParseAttempts {
			break
		}
		attempts++

		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), nil
		}

		fixed := QuoteBareValues(QuoteBareKeys(StripTrailingCommas(candidate)))
		if json.Valid([]byte(fixed)) {
			return json.RawMessage(fixed), nil
		}
	}
	return nil, ErrMalformedResponse
}

// Unmarshal repairs raw and decodes the result into v.
func Unmarshal(raw string, v interface{}) error {
	fixed, err := Repair(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(fixed, v)
}

// StripFences removes markdown code fences and the chatty prefixes models
// like to put in front of their JSON.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// Candidates returns the {...} spans worth parsing, most promising first:
// the balanced-brace match, then the greedy match to the last closing brace,
// then the non-greedy match to the first closing brace.
func Candidates(s string) []string {
	start := strings.Index(s, "{")
	if start == -1 {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(c string) {
		c = strings.TrimSpace(c)
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	if end := matchingBrace(s, start); end != -1 {
		add(s[start : end+1])
	}
	if end := strings.LastIndex(s, "}"); end > start {
		add(s[start : end+1])
	}
	if rel := strings.Index(s[start:], "}"); rel != -1 {
		add(s[start : start+rel+1])
	}
	return out
}

// matchingBrace finds the closing brace balancing s[start], ignoring braces
// inside string literals.
func matchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
