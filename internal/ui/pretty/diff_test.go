package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/tagtree/internal/ui/pretty"
	"github.com/yaklabco/tagtree/pkg/diff"
)

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	d := diff.Compute("page.tt", []byte("<a >\n</a>\n"), []byte("<a/>\n"))
	want := "diff --git a/page.tt b/page.tt\n" +
		"--- a/page.tt\n" +
		"+++ b/page.tt\n" +
		"@@ -1,2 +1,1 @@\n" +
		"-<a >\n" +
		"-</a>\n" +
		"+<a/>\n" +
		"\n"
	assert.Equal(t, want, styles.FormatDiff(d))

	assert.Empty(t, styles.FormatDiff(nil))
}
