package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const separator = ";"

var (
	titleColor  = color.New(color.FgCyan, color.Bold)
	columnColor = color.New(color.FgYellow)
)

// reportWriter streams a suite as ';' separated rows, one per size, under a
// colored title and column header.
type reportWriter struct {
	w   io.Writer
	err error
}

func newReportWriter(w io.Writer) *reportWriter {
	return &reportWriter{w: w}
}

func (r *reportWriter) header(title string, columns []string) {
	if r.err != nil {
		return
	}
	if _, r.err = titleColor.Fprintln(r.w, title); r.err != nil {
		return
	}
	_, r.err = columnColor.Fprintln(r.w, "n"+separator+strings.Join(columns, separator))
}

func (r *reportWriter) row(n int, values []float64) {
	if r.err != nil {
		return
	}
	fields := make([]string, 0, len(values)+1)
	fields = append(fields, strconv.Itoa(n))
	for _, v := range values {
		fields = append(fields, strconv.FormatFloat(v, 'g', 6, 64))
	}
	_, r.err = fmt.Fprintln(r.w, strings.Join(fields, separator))
}

// end closes a suite with a blank line and returns the first write error.
func (r *reportWriter) end() error {
	if r.err == nil {
		_, r.err = fmt.Fprintln(r.w)
	}
	return r.err
}
