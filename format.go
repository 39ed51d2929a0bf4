package hist

import (
	"fmt"
	"io"
	"strings"
)

// String renders the histogram as a report.
// See [Histogram.WriteTo] for the format.
func (h *Histogram[K]) String() string {
	var report strings.Builder
	h.WriteTo(&report) // strings.Builder never returns an error.
	return report.String()
}

// WriteTo writes a report of the histogram to w
// and returns the number of bytes written.
//
// The report has the form:
//
//	Reuse distance histogram:
//		<N> distance value(s), min <MIN>, max <MAX>
//		<TOTAL> accesses
//		(<INFINITE> first accesses)
//	value, count
//	<value>, <count>
//	...
//
// The summary block is omitted for an empty histogram and
// the "first accesses" line only appears if an infinite
// distance was recorded. MIN and MAX use [Distance.String];
// rows list finite distances in ascending order.
func (h *Histogram[K]) WriteTo(w io.Writer) (int64, error) {
	var (
		rows, infinite = h.sorted()
		report         = reportWriter{w: w}
	)
	if distinct := h.Len(); distinct > 0 {
		var (
			least, greatest = summaryBounds(rows, infinite)
			total           = infinite
		)
		for _, row := range rows {
			total += row.count
		}
		report.printf(
			"Reuse distance histogram:\n"+
				"\t%d distance value(s), min %s, max %s\n"+
				"\t%d accesses\n",
			distinct, least, greatest, total)
		if infinite != 0 {
			report.printf("\t(%d first accesses)\n", infinite)
		}
	}
	report.printf("value, count\n")
	for _, row := range rows {
		report.printf("%v, %d\n", row.value, row.count)
	}
	return report.n, report.err
}

// summaryBounds returns the first and last distance
// in snapshot order. At least one entry must exist.
func summaryBounds[K Key](rows []row[K], infinite uint64) (least, greatest Distance[K]) {
	if len(rows) == 0 {
		return Infinite[K](), Infinite[K]()
	}
	least = Finite(rows[0].value)
	if infinite != 0 {
		return least, Infinite[K]()
	}
	return least, Finite(rows[len(rows)-1].value)
}

// reportWriter tracks the byte count and
// stops writing after the first error.
type reportWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (rw *reportWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	n, err := fmt.Fprintf(rw.w, format, args...)
	rw.n += int64(n)
	rw.err = err
}
