package postprocess

import (
	"reflect"
	"testing"
)

func TestCorrectedWords(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     []string
	}{
		{
			"single word",
			`Did you mean <b><i>hello</i></b> world`,
			[]string{"hello"},
		},
		{
			"multiple words in order",
			`<b><i>quick</i></b> brown <b><i>fox</i></b>`,
			[]string{"quick", "fox"},
		},
		{
			"html entities",
			`<b><i>don&#39;t</i></b>`,
			[]string{"don't"},
		},
		{
			"no markers",
			`plain text`,
			[]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CorrectedWords(tt.fragment)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CorrectedWords(%q) = %v, want %v", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestPlain(t *testing.T) {
	got := Plain(` Did you mean <b><i>hello world</i></b>&quot;? `)
	want := `Did you mean hello world"?`
	if got != want {
		t.Errorf("Plain = %q, want %q", got, want)
	}
}
