package cli

import (
	"fmt"
	"strings"
	"testing"
)

func TestLogger_TablePlain(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		data  TableData
		title string
		want  string
	}{
		{
			name: "records with title",
			data: Records{
				{{Key: "name", Value: "a"}, {Key: "n", Value: 1}},
				{{Key: "name", Value: "bb"}, {Key: "n", Value: 2}},
			},
			title: "T",
			want:  "\nT\nname\tn\n------\na\t1\nbb\t2\n\n",
		},
		{
			name: "records take headers from the first record",
			data: Records{
				{{Key: "a", Value: 1}},
				{{Key: "b", Value: 2}, {Key: "a", Value: 3}},
			},
			want: "a\n-\n1\n3\n\n",
		},
		{
			name: "scalars are indexed",
			data: Scalars{"x", 3, nil},
			want: "0\tx\n1\t3\n2\t\n\n",
		},
		{
			name: "single record lists key and value",
			data: Record{{Key: "k", Value: "v"}, {Key: "z", Value: true}},
			want: "k\tv\nz\ttrue\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, buf := newTestLogger(WithEnabled(false))
			if got := l.Table(tt.data, tt.title, TableOptions{}); got != l {
				t.Error("Table must return the receiver")
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestLogger_TableEmpty(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		data  TableData
		title string
		want  string
	}{
		{"nil", nil, "", NoDataMessage + "\n"},
		{"empty records", Records{}, "", NoDataMessage + "\n"},
		{"nil scalars", Scalars(nil), "", NoDataMessage + "\n"},
		{"empty record", Record{}, "", NoDataMessage + "\n"},
		{"empty with title", Records{}, "Empty", "\nEmpty\n" + NoDataMessage + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, strategy := range []TableStrategy{TablePlain, TableAligned, TableBordered} {
				l, buf := newTestLogger(WithEnabled(false))
				l.Table(tt.data, tt.title, TableOptions{Strategy: strategy})
				if buf.String() != tt.want {
					t.Errorf("strategy %d: output = %q, want %q", strategy, buf.String(), tt.want)
				}
			}
		})
	}
}

func TestLogger_TableEmptyIsWarning(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger()
	l.Table(nil, "", TableOptions{})

	if want := "\x1b[33m" + NoDataMessage + "\x1b[0m\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_TablePlainHeaderStyle(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger()
	l.Table(Records{{{Key: "id", Value: 7}}}, "", TableOptions{})

	want := "\x1b[1m\x1b[37mid\x1b[0m\n" +
		"\x1b[1m\x1b[37m--\x1b[0m\n" +
		"7\n" +
		"\x1b[36m\x1b[0m\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_TableAligned(t *testing.T) {
	t.Parallel()

	t.Run("records", func(t *testing.T) {
		t.Parallel()
		l, buf := newTestLogger(WithEnabled(false))
		l.Table(Records{
			{{Key: "name", Value: "a"}, {Key: "n", Value: 1}},
			{{Key: "name", Value: "bb"}, {Key: "n", Value: 2}},
		}, "", TableOptions{Strategy: TableAligned})

		want := "name  n\n----  -\na     1\nbb    2\n\n"
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("record keys styled after padding", func(t *testing.T) {
		t.Parallel()
		l, buf := newTestLogger()
		l.Table(Record{{Key: "key", Value: "v"}, {Key: "longer", Value: "w"}}, "", TableOptions{Strategy: TableAligned})

		lines := strings.Split(buf.String(), "\n")
		if want := "\x1b[1m\x1b[37mkey     \x1b[0mv"; lines[0] != want {
			t.Errorf("line 0 = %q, want %q", lines[0], want)
		}
		if want := "\x1b[1m\x1b[37mlonger  \x1b[0mw"; lines[1] != want {
			t.Errorf("line 1 = %q, want %q", lines[1], want)
		}
	})
}

func TestLogger_TableFlattensControlCharacters(t *testing.T) {
	t.Parallel()
	inputs := []struct {
		name string
		data TableData
		want []string
	}{
		{"record", Record{{Key: "note", Value: "line1\nline2"}, {Key: "tab", Value: "a\tb"}}, []string{"line1 line2", "a b"}},
		{"records", Records{{{Key: "multi\nkey", Value: "x\ty"}, {Key: "cr", Value: "c\r\nd"}}}, []string{"multi key", "x y", "c d"}},
		{"scalars", Scalars{"p\nq", "r\ts"}, []string{"p q", "r s"}},
	}
	strategies := []TableStrategy{TablePlain, TableAligned, TableBordered}

	for _, in := range inputs {
		for _, strategy := range strategies {
			t.Run(fmt.Sprintf("%s/strategy %d", in.name, strategy), func(t *testing.T) {
				t.Parallel()
				l, buf := newTestLogger(WithEnabled(false))
				l.Table(in.data, "", TableOptions{Strategy: strategy})

				out := buf.String()
				for _, want := range in.want {
					if n := strings.Count(out, want); n != 1 {
						t.Errorf("%q appears %d times in:\n%s", want, n, out)
					}
				}
				for _, bad := range []string{"line1\n", "a\tb", "x\ty", "p\nq"} {
					if strings.Contains(out, bad) {
						t.Errorf("raw cell %q leaked into:\n%q", bad, out)
					}
				}
			})
		}
	}
}

func TestLogger_TableAlignedStyledMultilineRecord(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger()
	l.Table(Record{{Key: "note", Value: "line1\nline2"}, {Key: "tab", Value: "a\tb"}}, "", TableOptions{Strategy: TableAligned})

	want := "\x1b[1m\x1b[37mnote  \x1b[0mline1 line2\n" +
		"\x1b[1m\x1b[37mtab   \x1b[0ma b\n" +
		"\x1b[36m\x1b[0m\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_TableBordered(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(WithEnabled(false))
	l.Table(Records{
		{{Key: "theme", Value: "dark"}},
		{{Key: "theme", Value: "light"}},
	}, "Themes", TableOptions{Strategy: TableBordered})

	out := buf.String()
	for _, want := range []string{"Themes", "┌", "┘", "theme", "dark", "light"} {
		if !strings.Contains(out, want) {
			t.Errorf("bordered output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("disabled logger rendered escape codes:\n%q", out)
	}
}

func TestRecord_GetAndKeys(t *testing.T) {
	t.Parallel()
	r := Record{{Key: "a", Value: 1}, {Key: "b", Value: "two"}}

	if v, ok := r.Get("b"); !ok || v != "two" {
		t.Errorf("Get(b) = %v, %v", v, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) should report false")
	}
	if got := strings.Join(r.Keys(), ","); got != "a,b" {
		t.Errorf("Keys() = %q", got)
	}
}
