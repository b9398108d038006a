package workflows

import (
	"context"
	"testing"

	"github.com/PolarWolf314/ghsecrets/internal/secrets"
)

func TestList(t *testing.T) {
	result := List(context.Background(), ListOptions{
		Secrets: []secrets.Secret{
			{Name: "A", Value: "abc", Set: true},
			{Name: "B", Value: "", Set: true},
			{Name: "C"},
		},
	})

	want := []SecretState{
		{Name: "A", State: StateReady, Length: 3},
		{Name: "B", State: StateEmpty},
		{Name: "C", State: StateUnset},
	}
	if len(result.Secrets) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(result.Secrets))
	}
	for i := range want {
		if result.Secrets[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, result.Secrets[i], want[i])
		}
	}
	if result.Ready != 1 {
		t.Errorf("Ready = %d, want 1", result.Ready)
	}
}
