package bunnymesh

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"gonum.org/v1/gonum/mat"
)

// Arrays with more elements than this are printed in summarized form,
// showing only edgeItems rows and columns at each end.
const (
	printThreshold = 1000
	edgeItems      = 3
)

// Reporter prints labeled arrays for manual inspection.
type Reporter struct {
	out *termenv.Output
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{out: termenv.NewOutput(w)}
}

// Report writes the label, the array contents and its shape.
func (r *Reporter) Report(label string, a *Array) error {
	_, err := fmt.Fprintf(r.out, "%s :\n%s\n\tShape :  %s\n",
		r.out.String(label).Bold(), formatContents(a), FormatShape(a.Shape))
	return err
}

func formatContents(a *Array) string {
	d := a.Dense()
	if d == nil {
		return "[]"
	}
	opts := []mat.FormatOption{mat.Squeeze()}
	if a.Len() > printThreshold {
		opts = append(opts, mat.Excerpt(edgeItems))
	}
	return fmt.Sprintf("%v", mat.Formatted(d, opts...))
}
