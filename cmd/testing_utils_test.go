package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/PolarWolf314/ghsecrets/internal/github"
	logger "github.com/PolarWolf314/ghsecrets/internal/logging"
	"github.com/PolarWolf314/ghsecrets/internal/secrets"

	"github.com/spf13/cobra"
)

// setupTestEnvironment moves into a fresh directory with HOME pointing at it,
// so no config or .env file from the machine is picked up, and clears the
// GitHub variables.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	ResetGlobalState()

	dir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
	})

	t.Setenv("HOME", dir)
	t.Setenv("NO_COLOR", "1")
	t.Setenv("GITHUB_REPO", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_API_URL", "")
	return dir
}

// unsetEnv removes name for the rest of the test and restores it afterwards.
func unsetEnv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	if err := os.Unsetenv(name); err != nil {
		t.Fatalf("Failed to unset %s: %v", name, err)
	}
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)
	drain := func(r io.Reader) {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}
	go drain(stdoutReader)
	go drain(stderrReader)

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	first := <-outputChan
	second := <-outputChan

	return first + second, err
}

// createTestCLI creates a complete CLI instance for testing with the given arguments.
func createTestCLI(args []string, stdout io.Writer, verboseFlag, debugFlag bool) *cobra.Command {
	verbose = verboseFlag
	debug = debugFlag

	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}

	rootCmd := &cobra.Command{
		Use:           "ghsecrets",
		Short:         "ghsecrets - Publish local secrets to GitHub repository secrets.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetContext(context.Background())
	AddCommands(rootCmd)

	if stdout != nil {
		rootCmd.SetOut(stdout)
	}
	rootCmd.SetArgs(args)
	return rootCmd
}

// runCLI executes args and returns everything written to the command's output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := createTestCLI(args, &out, false, false).Execute()
	return out.String(), err
}

// fakeGitHub is an httptest server implementing the two secrets endpoints.
type fakeGitHub struct {
	*httptest.Server

	keyID      string
	publicKey  *[32]byte
	privateKey *[32]byte

	// rejections maps a secret name to the status and body returned for its PUT.
	rejections map[string]rejection

	// keyRejection, when set, is returned for every public key request.
	keyRejection *rejection

	mu        sync.Mutex
	hits      int
	keyHits   int
	stored    map[string]string
	authSeen  []string
	pathsSeen []string
}

type rejection struct {
	status int
	body   string
}

func newFakeGitHub(t *testing.T) *fakeGitHub {
	t.Helper()

	encoded, pub, priv, err := secrets.GenerateKeyPair()
	if err != nil {
		t.Fatalf("Failed to generate key pair: %v", err)
	}

	f := &fakeGitHub{
		keyID:      "568250167242549743",
		publicKey:  pub,
		privateKey: priv,
		rejections: map[string]rejection{},
		stored:     map[string]string{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/{owner}/{repo}/actions/secrets/public-key", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		f.mu.Lock()
		f.keyHits++
		f.mu.Unlock()
		if rej := f.keyRejection; rej != nil {
			http.Error(w, rej.body, rej.status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(github.PublicKey{KeyID: f.keyID, Key: encoded})
	})
	mux.HandleFunc("PUT /repos/{owner}/{repo}/actions/secrets/{name}", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		name := r.PathValue("name")
		if rej, ok := f.rejections[name]; ok {
			http.Error(w, rej.body, rej.status)
			return
		}

		var body github.EncryptedSecret
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.KeyID != f.keyID {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.stored[name] = body.EncryptedValue
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeGitHub) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hits++
	f.authSeen = append(f.authSeen, r.Header.Get("Authorization"))
	f.pathsSeen = append(f.pathsSeen, r.URL.Path)
}

func (f *fakeGitHub) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits
}

// decrypted opens the stored ciphertext for name.
func (f *fakeGitHub) decrypted(t *testing.T, name string) string {
	t.Helper()
	f.mu.Lock()
	ciphertext, ok := f.stored[name]
	f.mu.Unlock()
	if !ok {
		t.Fatalf("secret %s was not stored", name)
	}
	plaintext, err := secrets.DecryptSecret(ciphertext, f.publicKey, f.privateKey)
	if err != nil {
		t.Fatalf("Failed to decrypt %s: %v", name, err)
	}
	return plaintext
}

// useFakeGitHub points the CLI at f for the rest of the test.
func useFakeGitHub(t *testing.T, f *fakeGitHub) {
	t.Helper()
	t.Setenv("GITHUB_REPO", "octo-org/hello-world")
	t.Setenv("GITHUB_TOKEN", "ghp_testtoken")
	t.Setenv("GITHUB_API_URL", f.URL)
}

// lines splits output into trimmed, non-empty lines.
func lines(output string) []string {
	var out []string
	for _, l := range strings.Split(output, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
