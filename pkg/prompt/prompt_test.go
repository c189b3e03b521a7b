package prompt

import (
	"bytes"
	"strings"
	"testing"

	kerrors "github.com/elphtools/kmesh/pkg/errors"
	"github.com/elphtools/kmesh/pkg/mesh"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    mesh.Spec
		wantErr bool
	}{
		{
			name:  "unweighted mesh",
			input: "2\n1\n1\nn\n",
			want:  mesh.Spec{Counts: [3]int{2, 1, 1}},
		},
		{
			name:  "weighted mesh",
			input: "4\n4\n2\ny\n",
			want:  mesh.Spec{Counts: [3]int{4, 4, 2}, Weighted: true},
		},
		{
			name:  "whitespace around counts",
			input: "  3 \n2\n1\nno\n",
			want:  mesh.Spec{Counts: [3]int{3, 2, 1}},
		},
		{
			name:    "zero count",
			input:   "0\n1\n1\nn\n",
			wantErr: true,
		},
		{
			name:    "negative count",
			input:   "2\n-1\n1\nn\n",
			wantErr: true,
		},
		{
			name:    "non-numeric count",
			input:   "2\nabc\n1\nn\n",
			wantErr: true,
		},
		{
			name:    "truncated input",
			input:   "2\n1\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prompts bytes.Buffer
			got, err := Run(strings.NewReader(tt.input), &prompts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !kerrors.IsInvalidInput(err) {
					t.Errorf("expected INVALID_INPUT, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Run() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRunPromptSequence(t *testing.T) {
	var prompts bytes.Buffer
	if _, err := Run(strings.NewReader("1\n1\n1\ny\n"), &prompts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "number of points along 1st axis: " +
		"number of points along 2nd axis: " +
		"number of points along 3rd axis: " +
		"print weights (y/n): "
	if got := prompts.String(); got != want {
		t.Errorf("prompt sequence:\n%q\nwant:\n%q", got, want)
	}
}

func TestWantsWeights(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y", true},
		{"yes", true},
		{"nay", true}, // substring convention, preserved for parity
		{"Y", false},  // match is case-sensitive
		{"Yes", false},
		{"n", false},
		{"no", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := WantsWeights(tt.input); got != tt.want {
				t.Errorf("WantsWeights(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
