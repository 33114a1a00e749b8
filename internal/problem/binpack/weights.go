package binpack

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadWeights reads item weights from a file holding one integer per line
func LoadWeights(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	weights, err := ReadWeights(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return weights, nil
}

// ReadWeights parses one integer weight per line. Blank lines are skipped.
func ReadWeights(r io.Reader) ([]int, error) {
	var weights []int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		w, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid weight %q", line, text)
		}
		weights = append(weights, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return weights, nil
}

// FormatWeights pretty prints weights as <a, b, c>
func FormatWeights(weights []int) string {
	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = strconv.Itoa(w)
	}
	return "<" + strings.Join(parts, ", ") + ">"
}
