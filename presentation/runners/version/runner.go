package version

import (
	"fmt"
	"io"
	"strings"

	"macchanger/domain/app"
)

// Tag will be set via ldflags by CI release workflow
var Tag = "dev-build"

// Current returns the trimmed version tag.
func Current() string {
	return strings.TrimSpace(Tag)
}

type Runner struct {
	out io.Writer
}

func NewRunner(out io.Writer) *Runner { return &Runner{out: out} }

func (r *Runner) Run() {
	_, _ = fmt.Fprintf(r.out, "%s %s\n",
		app.Name,
		Current(),
	)
}
