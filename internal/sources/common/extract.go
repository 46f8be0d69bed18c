package common

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	perrors "subscanner/internal/platform/errors"
)

// RegexGroup returns an extractor yielding the first capture group of every match.
func RegexGroup(re *regexp.Regexp) Extractor {
	return func(body []byte) ([]string, error) {
		matches := re.FindAllSubmatch(body, -1)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			if len(m) > 1 {
				out = append(out, string(m[1]))
			}
		}
		return out, nil
	}
}

// DomainPattern compiles a case-insensitive pattern where every "{domain}"
// is replaced with the quoted domain.
func DomainPattern(pattern, domain string) *regexp.Regexp {
	return regexp.MustCompile(strings.ReplaceAll(pattern, "{domain}", regexp.QuoteMeta(domain)))
}

// FirstField returns an extractor yielding the first sep-delimited field of each line.
func FirstField(sep string) Extractor {
	return func(body []byte) ([]string, error) {
		var out []string
		sc := bufio.NewScanner(bytes.NewReader(body))
		sc.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			field, _, _ := strings.Cut(line, sep)
			out = append(out, field)
		}
		if err := sc.Err(); err != nil {
			return out, perrors.Errorf("%w: %v", perrors.ErrInvalidResponse, err)
		}
		return out, nil
	}
}

// JSONField returns an extractor decoding a JSON array of objects and
// yielding the string value of field from each element.
func JSONField(field string) Extractor {
	return func(body []byte) ([]string, error) {
		var records []map[string]any
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, perrors.Errorf("%w: decode %s: %v", perrors.ErrInvalidResponse, field, err)
		}
		out := make([]string, 0, len(records))
		for _, rec := range records {
			switch v := rec[field].(type) {
			case string:
				out = append(out, v)
			case nil:
			default:
				out = append(out, fmt.Sprint(v))
			}
		}
		return out, nil
	}
}
