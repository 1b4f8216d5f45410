package roslyn

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/scan-io-git/editorconfig-updater/pkg/shared/errors"
)

// errorCodesSource names the compiler listing in errors.
const errorCodesSource = "ErrorCode.cs"

// BlockLocator finds the enumerator block inside a compiler source listing.
type BlockLocator interface {
	// Start reports whether line opens the block. The opening line itself is extracted.
	Start(line string) bool
	// End reports whether line closes the block. Extraction stops before it.
	End(line string) bool
}

// EnumBlockLocator locates the ErrorCode enum body: it opens at the first line holding
// both an assignment and an underscore (the first ERR_/WRN_ member) and closes at the
// first line holding a closing brace.
type EnumBlockLocator struct{}

func (EnumBlockLocator) Start(line string) bool {
	return strings.Contains(line, "=") && strings.Contains(line, "_")
}

func (EnumBlockLocator) End(line string) bool {
	return strings.Contains(line, "}")
}

// ParseErrorCodes extracts symbolic name to numeric id pairs from a compiler source listing.
// A nil locator selects EnumBlockLocator. Any member whose value is not an integer aborts the parse.
func ParseErrorCodes(r io.Reader, locator BlockLocator) (map[string]int, error) {
	if locator == nil {
		locator = EnumBlockLocator{}
	}

	codes := make(map[string]int)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inBlock := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()

		if !inBlock {
			if !locator.Start(raw) {
				continue
			}
			inBlock = true
		}
		if locator.End(raw) {
			break
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			continue
		}

		name := strings.TrimSpace(parts[0])
		literal := strings.TrimSpace(strings.Split(strings.TrimSpace(parts[1]), ",")[0])
		value, err := strconv.ParseInt(literal, 10, 32)
		if err != nil {
			return nil, errors.NewFormatErrorAt(errorCodesSource, lineNo, fmt.Sprintf("invalid value for %s", name), err)
		}
		codes[name] = int(value)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.NewFormatError(errorCodesSource, "failed to read listing", err)
	}
	return codes, nil
}
