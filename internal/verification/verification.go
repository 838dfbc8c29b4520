// Package verification verifies that a generated output file is reproduced
// exactly by a repeated generation.
package verification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// maxLoggedMismatches limits the number of mismatching lines that are logged.
const maxLoggedMismatches = 10

// GenerateFunc writes the artifact that is expected in the output file.
type GenerateFunc func(w io.Writer) error

// VerifyOutput regenerates the artifact and compares it to the content of the
// output file.
func VerifyOutput(ctx context.Context, logger *log.Logger, file string, generate GenerateFunc) error {
	if file == "" || file == "-" {
		return errors.New("can not verify console output")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("verifying '%s': %w", file, err)
	}

	var buf bytes.Buffer
	if err := generate(&buf); err != nil {
		return fmt.Errorf("regenerating output: %w", err)
	}

	written, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading output file for comparison: %w", err)
	}

	if err := checkLinesEqual(logger, written, buf.Bytes()); err != nil {
		return fmt.Errorf("output '%s' mismatch: %w", file, err)
	}
	return nil
}

func checkLinesEqual(logger *log.Logger, expected, got []byte) error {
	expectedLines := bytes.Split(expected, []byte{'\n'})
	gotLines := bytes.Split(got, []byte{'\n'})
	if len(expectedLines) != len(gotLines) {
		return fmt.Errorf("mismatched line counts, %d != %d", len(expectedLines), len(gotLines))
	}

	var diffs uint64
	for i := range expectedLines {
		if bytes.Equal(expectedLines[i], gotLines[i]) {
			continue
		}

		diffs++
		if diffs <= maxLoggedMismatches {
			logger.Error("Line mismatch",
				log.Int("line", i+1),
				log.String("expected", string(expectedLines[i])),
				log.String("got", string(gotLines[i])))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d line mismatches", diffs)
}
