package textutil

import (
	"reflect"
	"testing"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"  plain text \n here ", "plain text here"},
		{"<p>Great <b>mentor</b></p><script>alert(1)</script>", "Great mentor"},
		{"a < b but no tags", "a < b but no tags"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := PlainText(tc.in); got != tc.want {
			t.Fatalf("PlainText(%q): got=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestCleanList(t *testing.T) {
	t.Parallel()
	got := CleanList([]string{" Python", "python ", "", "  ", "SQL"})
	want := []string{"Python", "SQL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%q want=%q", got, want)
	}
}
