// Package release models just enough of the GitHub Actions workflow syntax
// to check the guarantees the delivery pipeline depends on. The workflow is
// plain YAML that nothing exercises until a release is cut; parsing and
// verifying it here puts those guarantees under the ordinary test suite.
package release

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	buildJob   = "build"
	publishJob = "publish"
)

// Workflow is a GitHub Actions workflow, restricted to the subset of the
// syntax this repository uses.
type Workflow struct {
	Name        string             `yaml:"name"`
	On          map[string]Trigger `yaml:"on"`
	Permissions map[string]string  `yaml:"permissions"`
	Jobs        map[string]Job     `yaml:"jobs"`
}

// Trigger is the configuration of one workflow event.
type Trigger struct {
	Types []string `yaml:"types"`
}

// Job is one workflow job.
type Job struct {
	Name        string            `yaml:"name"`
	RunsOn      string            `yaml:"runs-on"`
	Needs       Needs             `yaml:"needs"`
	Permissions map[string]string `yaml:"permissions"`
	Steps       []Step            `yaml:"steps"`
}

// Step is one job step.
type Step struct {
	Name string            `yaml:"name"`
	Uses string            `yaml:"uses"`
	Run  string            `yaml:"run"`
	With map[string]string `yaml:"with"`
	Env  map[string]string `yaml:"env"`
}

// Needs accepts both the scalar and the list form of a job dependency.
type Needs []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Needs) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*n = Needs{s}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*n = Needs(items)
		return nil
	default:
		return errors.New("release: needs must be a job name or a list of job names")
	}
}

// Parse decodes a workflow document.
func Parse(data []byte) (*Workflow, error) {
	var w Workflow
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("release: parse workflow: %w", err)
	}
	return &w, nil
}

// Load reads and decodes the workflow file at path.
func Load(path string) (*Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("release: read workflow: %w", err)
	}
	return Parse(data)
}

// Verify checks the structural guarantees of the pipeline: a run is triggered
// only by a published release, the publish job runs strictly after a
// successful build, both stages agree on the artifact bundle name, and the
// registry token never reaches the build environment.
func (w *Workflow) Verify() error {
	if err := w.verifyTrigger(); err != nil {
		return err
	}
	if err := w.verifyOrdering(); err != nil {
		return err
	}
	if err := w.verifyArtifact(); err != nil {
		return err
	}
	return w.verifyToken()
}

func (w *Workflow) verifyTrigger() error {
	rel, ok := w.On["release"]
	if !ok {
		return errors.New("release: workflow must trigger on release events")
	}
	for event := range w.On {
		if event != "release" {
			return fmt.Errorf("release: unexpected trigger %q", event)
		}
	}
	if len(rel.Types) != 1 || rel.Types[0] != "published" {
		return fmt.Errorf("release: trigger must fire on published releases only, got %v", rel.Types)
	}
	return nil
}

func (w *Workflow) verifyOrdering() error {
	if _, ok := w.Jobs[buildJob]; !ok {
		return fmt.Errorf("release: missing %q job", buildJob)
	}
	publish, ok := w.Jobs[publishJob]
	if !ok {
		return fmt.Errorf("release: missing %q job", publishJob)
	}
	for _, dep := range publish.Needs {
		if dep == buildJob {
			return nil
		}
	}
	return fmt.Errorf("release: %q must depend on %q", publishJob, buildJob)
}

func (w *Workflow) verifyArtifact() error {
	upload, err := artifactName(w.Jobs[buildJob], "actions/upload-artifact")
	if err != nil {
		return err
	}
	download, err := artifactName(w.Jobs[publishJob], "actions/download-artifact")
	if err != nil {
		return err
	}
	if upload != download {
		return fmt.Errorf("release: artifact bundle mismatch: build uploads %q, publish downloads %q", upload, download)
	}
	return nil
}

func artifactName(job Job, action string) (string, error) {
	for _, step := range job.Steps {
		if !strings.HasPrefix(step.Uses, action+"@") {
			continue
		}
		name := step.With["name"]
		if name == "" {
			return "", fmt.Errorf("release: %s step has no artifact name", action)
		}
		return name, nil
	}
	return "", fmt.Errorf("release: no %s step found", action)
}

func (w *Workflow) verifyToken() error {
	for name, job := range w.Jobs {
		if name == publishJob {
			continue
		}
		for _, step := range job.Steps {
			if step.usesSecrets() {
				return fmt.Errorf("release: job %q must not read secrets", name)
			}
		}
	}
	for _, step := range w.Jobs[publishJob].Steps {
		if step.usesSecrets() {
			return nil
		}
	}
	return errors.New("release: publish job never reads the registry token")
}

func (s Step) usesSecrets() bool {
	for _, v := range s.Env {
		if strings.Contains(v, "secrets.") {
			return true
		}
	}
	for _, v := range s.With {
		if strings.Contains(v, "secrets.") {
			return true
		}
	}
	return strings.Contains(s.Run, "secrets.")
}
