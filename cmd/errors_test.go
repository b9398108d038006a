package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/ghsecrets/internal/errors"
)

func TestFormatError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "repo and token missing",
			err:  errors.Join(kerrors.ErrMissingRepo, kerrors.ErrMissingToken),
			want: []string{"✗ Error: GITHUB_REPO and GITHUB_TOKEN must be set", "→"},
		},
		{
			name: "token missing",
			err:  kerrors.ErrMissingToken,
			want: []string{"✗ Error: GITHUB_TOKEN must be set", "--token-stdin"},
		},
		{
			name: "invalid repo",
			err:  fmt.Errorf("%w: %q", kerrors.ErrInvalidRepo, "nope"),
			want: []string{"owner/name form", "octo-org/hello-world"},
		},
		{
			name: "strict failure",
			err:  fmt.Errorf("%w: 1 of 3", kerrors.ErrSecretsFailed),
			want: []string{"✗ one or more secrets failed to publish: 1 of 3"},
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: []string{"✗ Error: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatError(tt.err)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("FormatError() = %q, want it to contain %q", got, want)
				}
			}
		})
	}
}
