package sample

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadNumbers reads integers from path, one per line. Blank lines and lines
// starting with '#' are skipped. Parsing stops at the first line that is not
// an integer; everything read up to that point is returned.
func ReadNumbers(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer file.Close()

	numbers := []int{}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			break
		}
		numbers = append(numbers, value)
	}

	err = scanner.Err()
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	return numbers, nil
}
