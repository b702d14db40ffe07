package main

import (
	"delivery-eda-service/internal/analysis"
	"delivery-eda-service/internal/domain"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

func printReport(out io.Writer, sess *domain.Session) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "%s: %d rows, %d kept, %d dropped\n\n", sess.FileName, sess.Raw.Len(), sess.Clean.Len(), sess.Dropped())

	fmt.Fprintln(tw, "column\tmissing\t")
	for _, m := range sess.Missing.Ordered(sess.Raw.Columns) {
		fmt.Fprintf(tw, "%s\t%d\t\n", m.Field, m.Count)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "\tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax\t")
	for _, s := range analysis.Describe(sess.Clean) {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			s.Field, s.Count, num(s.Mean), num(s.Std), num(s.Min), num(s.Q25), num(s.Q50), num(s.Q75), num(s.Max))
	}
	fmt.Fprintln(tw)

	for _, f := range domain.FilterFields {
		fmt.Fprintf(tw, "%s\tcount\t\n", f)
		for _, c := range analysis.Categories(sess.Clean, f) {
			fmt.Fprintf(tw, "%s\t%d\t\n", c.Value, c.Count)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
