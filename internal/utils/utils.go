package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WritePrimes writes one prime per line through a buffered writer.
func WritePrimes(w io.Writer, primes []int) error {
	buf := bufio.NewWriterSize(w, 1<<20) // 1 MiB buffer for faster writes

	for _, n := range primes {
		if _, err := buf.WriteString(strconv.Itoa(n)); err != nil {
			return err
		}
		if err := buf.WriteByte('\n'); err != nil {
			return err
		}
	}

	return buf.Flush()
}

// WritePrimesFile creates the file at path and writes the primes into it.
func WritePrimesFile(path string, primes []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := WritePrimes(f, primes); err != nil {
		return fmt.Errorf("failed to save primes: %v", err)
	}

	return nil
}
