package release

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// helper to find the repository's release workflow from the test's cwd
func findWorkflow(t *testing.T) string {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	for {
		candidate := filepath.Join(cwd, ".github", "workflows", "release.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}
	t.Fatalf(".github/workflows/release.yml not found in repository tree")
	return ""
}

func TestRepositoryWorkflowVerifies(t *testing.T) {
	w, err := Load(findWorkflow(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := w.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestRepositoryWorkflowShape(t *testing.T) {
	w, err := Load(findWorkflow(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := w.On["release"].Types; len(got) != 1 || got[0] != "published" {
		t.Errorf("trigger types = %v, want [published]", got)
	}
	if got := w.Permissions["contents"]; got != "read" {
		t.Errorf("workflow contents permission = %q, want read", got)
	}
	if got := w.Jobs["publish"].Permissions["contents"]; got != "write" {
		t.Errorf("publish contents permission = %q, want write", got)
	}

	upload, err := artifactName(w.Jobs["build"], "actions/upload-artifact")
	if err != nil {
		t.Fatalf("artifactName(build): %v", err)
	}
	download, err := artifactName(w.Jobs["publish"], "actions/download-artifact")
	if err != nil {
		t.Fatalf("artifactName(publish): %v", err)
	}
	if upload != "dist" || download != "dist" {
		t.Errorf("artifact names = %q/%q, want dist/dist", upload, download)
	}
}

const validWorkflow = `
name: Release
on:
  release:
    types: [published]
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/upload-artifact@v4
        with:
          name: dist
          path: dist/
  publish:
    needs: build
    runs-on: ubuntu-latest
    steps:
      - uses: actions/download-artifact@v4
        with:
          name: dist
      - name: Publish
        env:
          TOKEN: ${{ secrets.REGISTRY_TOKEN }}
        run: upload dist/*
`

func TestVerifyValid(t *testing.T) {
	w, err := Parse([]byte(validWorkflow))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := w.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyViolations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "extra trigger",
			yaml: strings.Replace(validWorkflow, "on:\n  release:", "on:\n  push: {}\n  release:", 1),
			want: "unexpected trigger",
		},
		{
			name: "wrong release type",
			yaml: strings.Replace(validWorkflow, "types: [published]", "types: [created]", 1),
			want: "published releases only",
		},
		{
			name: "missing trigger",
			yaml: strings.Replace(validWorkflow, "on:\n  release:\n    types: [published]\n", "on:\n  push: {}\n", 1),
			want: "must trigger on release",
		},
		{
			name: "publish without needs",
			yaml: strings.Replace(validWorkflow, "    needs: build\n", "", 1),
			want: "must depend on",
		},
		{
			name: "artifact name mismatch",
			yaml: strings.Replace(validWorkflow, "name: dist", "name: bundle", 1),
			want: "artifact bundle mismatch",
		},
		{
			name: "token in build",
			yaml: strings.Replace(validWorkflow,
				"      - uses: actions/checkout@v4\n",
				"      - uses: actions/checkout@v4\n        env:\n          TOKEN: ${{ secrets.REGISTRY_TOKEN }}\n", 1),
			want: "must not read secrets",
		},
		{
			name: "publish without token",
			yaml: strings.Replace(validWorkflow,
				"        env:\n          TOKEN: ${{ secrets.REGISTRY_TOKEN }}\n", "", 1),
			want: "never reads the registry token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			err = w.Verify()
			if err == nil {
				t.Fatal("Verify passed, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Verify error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestNeedsForms(t *testing.T) {
	for _, tt := range []struct {
		name string
		yaml string
	}{
		{"scalar", "needs: build"},
		{"list", "needs: [build]"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var job Job
			if err := yaml.Unmarshal([]byte(tt.yaml), &job); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(job.Needs) != 1 || job.Needs[0] != "build" {
				t.Errorf("needs = %v, want [build]", job.Needs)
			}
		})
	}

	var job Job
	if err := yaml.Unmarshal([]byte("needs: {job: build}"), &job); err == nil {
		t.Error("mapping form accepted, want error")
	}
}

func TestParseRejectsScalarTrigger(t *testing.T) {
	if _, err := Parse([]byte("on: push\njobs: {}")); err == nil {
		t.Fatal("scalar trigger accepted, want error")
	}
}
