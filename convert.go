package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	// FirmwareName is the fixed output file name
	FirmwareName = "Firmware.hex"
	prefixLen    = 2
	// never matches since blank lines are skipped before filtering, kept for parity
	blankSentinel = "\n\n"
)

// ErrMissingField is returned for a line without a second field
var ErrMissingField = errors.New("line has fewer than two fields")

var errBlankLine = errors.New("blank line")

// extract returns the second field of line without its first two characters,
// terminated by a newline
func extract(line string) (string, error) {
	flist := strings.Fields(line)
	switch len(flist) {
	case 0:
		return "", errBlankLine
	case 1:
		return "", fmt.Errorf("%w: %q", ErrMissingField, line)
	}
	text := flist[1]
	//prefix is counted in characters, not bytes
	for i := 0; i < prefixLen && text != ""; i++ {
		_, size := utf8.DecodeRuneInString(text)
		text = text[size:]
	}
	return text + "\n", nil
}

// transform converts all lines in order, any malformed line aborts the whole conversion
func transform(lines []string) ([]string, error) {
	modified := make([]string, 0, len(lines))
	for i, line := range lines {
		payload, err := extract(line)
		if err != nil {
			if errors.Is(err, errBlankLine) {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		modified = append(modified, payload)
	}
	r := modified[:0]
	for _, elem := range modified {
		if elem != blankSentinel {
			r = append(r, elem)
		}
	}
	return r, nil
}

func readLines(path string) ([]string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, nil
	}
	//\r\n, \r and \n all end a line
	txt := strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(string(buf))
	txt = strings.TrimSuffix(txt, "\n")
	return strings.Split(txt, "\n"), nil
}

func writeLines(path string, lines []string) error {
	ofile, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := ofile.WriteString(line); err != nil {
			ofile.Close()
			return fmt.Errorf("failed to write %v: %w", path, err)
		}
	}
	return ofile.Close()
}

// Convert extracts the payloads of input and writes them to output, the output
// is only touched after every line converted; it returns number of payloads written
func Convert(input, output string) (int, error) {
	lines, err := readLines(input)
	if err != nil {
		return 0, err
	}
	hexcode, err := transform(lines)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", input, err)
	}
	err = writeLines(output, hexcode)
	if err != nil {
		return 0, err
	}
	return len(hexcode), nil
}
