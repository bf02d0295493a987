// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Formatting literals.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// String renders m row by row as "[a, b]\n".
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// WriteTo writes m as whitespace-separated text, one row per line.
// The output is accepted by Scan on a matrix of the same shape.
func (m *Dense[T]) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			sep := " "
			if j == m.c-1 {
				sep = "\n"
			}
			n, err := fmt.Fprint(bw, m.data[i*m.c+j], sep)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}

	return total, bw.Flush()
}

// Scan fills the pre-sized m with Rows()*Cols() whitespace-separated values
// read from r in row-major order. It does not change m's shape.
//
// Errors:
//   - ErrShortRead if r ends before every cell is filled; cells read so far are kept.
//   - Parse errors from fmt, wrapped with the failing cell.
func (m *Dense[T]) Scan(r io.Reader) error {
	br := bufio.NewReader(r)
	for k := range m.data {
		if _, err := fmt.Fscan(br, &m.data[k]); err != nil {
			i, j := k/m.c, k%m.c
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return denseErrorf(opScan, i, j, ErrShortRead)
			}
			return denseErrorf(opScan, i, j, err)
		}
	}

	return nil
}
