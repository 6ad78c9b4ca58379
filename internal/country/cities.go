package country

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amishk599/bankradar/internal/textnorm"
)

// Cities is a city name to country code table loaded from a CSV file.
type Cities struct {
	codes    map[string]string
	maxWords int
}

// Len returns the number of cities loaded.
func (c *Cities) Len() int {
	return len(c.codes)
}

// LoadCities reads a CSV file with a header row and the columns
// name,country[,population]. The country column may hold an ISO code or any
// name the alias table knows. Rows below minPopulation are skipped when the
// population column is present. Unknown countries are skipped.
func LoadCities(path string, minPopulation int) (*Cities, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening city file: %w", err)
	}
	defer f.Close()
	return ReadCities(f, minPopulation)
}

// ReadCities parses the LoadCities format from r.
func ReadCities(r io.Reader, minPopulation int) (*Cities, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("city file is empty")
		}
		return nil, fmt.Errorf("reading city header: %w", err)
	}

	resolve := New()
	c := &Cities{codes: make(map[string]string)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading city file: %w", err)
		}
		if len(rec) < 2 {
			continue
		}
		if len(rec) >= 3 && minPopulation > 0 {
			pop, err := strconv.Atoi(strings.TrimSpace(rec[2]))
			if err != nil || pop < minPopulation {
				continue
			}
		}
		name := textnorm.Words(rec[0])
		code := resolve.countryCode(rec[1])
		if name == "" || code == "" {
			continue
		}
		if _, dup := c.codes[name]; dup {
			continue
		}
		c.codes[name] = code
		if w := strings.Count(name, " ") + 1; w > c.maxWords {
			c.maxWords = w
		}
	}
	return c, nil
}

// countryCode resolves a country column value: an ISO code or a known name.
func (n *Normalizer) countryCode(s string) string {
	s = strings.TrimSpace(s)
	if code := strings.ToUpper(s); len(code) == 2 {
		if _, ok := canonical[code]; ok {
			return code
		}
	}
	return n.aliasCode[textnorm.Words(s)]
}

// lookup finds the leftmost city in text, preferring the longest name at the
// same start.
func (c *Cities) lookup(text string) (string, bool) {
	words := strings.Fields(text)
	for i := range words {
		for size := min(c.maxWords, len(words)-i); size > 0; size-- {
			if code, ok := c.codes[strings.Join(words[i:i+size], " ")]; ok {
				return code, true
			}
		}
	}
	return "", false
}
