package countservice

import (
	"bytes"
	"io"
	"os"
)

// countBufSize is the chunk size for newline scanning reads.
const countBufSize = 32 * 1024

// CountLines counts newline bytes in the file at path. The result is the
// number of '\n' occurrences, so a final line without a trailing newline
// adds nothing to the count.
func CountLines(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	buf := make([]byte, countBufSize)

	var lines int64
	for {
		n, err := f.Read(buf)
		lines += int64(bytes.Count(buf[:n], []byte{'\n'}))

		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return 0, err
		}
	}
}
