package model

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadPattern opens the pattern file at path and parses it with ParsePattern.
func LoadPattern(path string) (Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to open pattern file: %+v", path)
	}
	defer f.Close()

	pattern, err := ParsePattern(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to read pattern file: %+v", path)
	}
	return pattern, nil
}

// ParsePattern reads one "(x,y)" record per line. Lines that do not hold
// exactly two non-negative integers are skipped, whatever their length.
func ParsePattern(r io.Reader) (Pattern, error) {
	pattern := Pattern{}
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if p, ok := parsePoint(line); ok {
			pattern = append(pattern, p)
		}
		if err == io.EOF {
			return pattern, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "[ParsePattern] read failed")
		}
	}
}

func parsePoint(line string) (Point, bool) {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "(")
	line = strings.TrimSuffix(line, ")")

	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return Point{}, false
	}

	x, err := parseCoord(fields[0])
	if err != nil {
		return Point{}, false
	}
	y, err := parseCoord(fields[1])
	if err != nil {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

func parseCoord(field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.Errorf("negative coordinate %d", v)
	}
	return v, nil
}
