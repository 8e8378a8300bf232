// Package clitest runs command lines described in YAML files against an
// in-process entry point and compares stdout, stderr and the exit code.
//
// A file holds either a sequence of cases or a mapping with a "tests" key:
//
//	tests:
//	  - name: seq-down
//	    cmd: ranges
//	    args: [seq, "5", downTo, "1"]
//	    expect:
//	      stdout: "5 4 3 2 1\n"
//
// Args are given as a list so that values such as "-3..-1" or "a b" need no
// shell quoting.
package clitest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// Expect is what a case must produce.
type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// Case is one command line.
type Case struct {
	Name   string   `yaml:"name"`
	Cmd    string   `yaml:"cmd"`
	Args   []string `yaml:"args"`
	Expect Expect   `yaml:"expect"`
}

// File is the parsed content of one YAML file. The node tree is kept so that
// an update rewrites only the expect blocks and preserves everything else.
type File struct {
	Name  string
	Cases []Case `yaml:"tests"`

	path      string
	root      *yaml.Node
	caseNodes []*yaml.Node
}

type Suite struct {
	mu       sync.Mutex
	files    []*File
	programs map[string]func() int
}

// Read loads every .yaml and .yml file under dir.
func Read(dir string) (*Suite, error) {
	s := &Suite{programs: make(map[string]func() int)}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if ext := strings.ToLower(filepath.Ext(path)); ext != ".yaml" && ext != ".yml" {
			return nil
		}
		f, err := readFile(path)
		if err != nil {
			return err
		}
		s.files = append(s.files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func readFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%s: empty yaml", path)
	}
	seq, err := casesNode(root.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f := &File{Name: filepath.Base(path), path: path, root: &root, caseNodes: seq.Content}
	if err := seq.Decode(&f.Cases); err != nil {
		return nil, fmt.Errorf("%s: decode tests: %w", path, err)
	}
	return f, nil
}

func casesNode(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.SequenceNode:
		return doc, nil
	case yaml.MappingNode:
		v := mapValue(doc, "tests")
		if v == nil {
			return nil, fmt.Errorf("missing 'tests' key")
		}
		if v.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("tests must be a sequence")
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
	}
}

// Register binds cmd, as named in the YAML files, to an entry point returning
// the exit code.
func (s *Suite) Register(cmd string, run func() int) {
	s.programs[cmd] = run
}

// Run runs every case as a subtest. With update set, mismatching expectations
// are written back to their files instead of failing.
func (s *Suite) Run(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.files {
		t.Run(f.Name, func(t *testing.T) {
			for i := range f.Cases {
				name := f.Cases[i].Name
				if name == "" {
					name = fmt.Sprintf("case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					s.runCase(t, f, i, update)
				})
			}
		})
	}
}

func (s *Suite) runCase(t *testing.T, f *File, idx int, update bool) {
	c := &f.Cases[idx]
	run, ok := s.programs[c.Cmd]
	if !ok {
		t.Fatalf("command %q not registered", c.Cmd)
	}

	stdout, stderr, code := capture(t, append([]string{c.Cmd}, c.Args...), run)

	changes := f.apply(t, idx, Expect{Stdout: stdout, Stderr: stderr, ExitCode: code}, update)
	if update && len(changes) > 0 {
		if err := f.write(); err != nil {
			t.Fatalf("write %s: %v", f.path, err)
		}
		t.Logf("updated %s: %s", f.path, strings.Join(changes, "; "))
	}
}

// capture runs run with os.Args set to args and returns what it wrote.
func capture(t *testing.T, args []string, run func() int) (string, string, int) {
	oldArgs, oldStdout, oldStderr := os.Args, os.Stdout, os.Stderr
	defer func() {
		os.Args, os.Stdout, os.Stderr = oldArgs, oldStdout, oldStderr
	}()

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Args, os.Stdout, os.Stderr = args, wOut, wErr

	var stdout, stderr bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = io.Copy(&stdout, rOut)
	}()
	go func() {
		defer wg.Done()
		_, _ = io.Copy(&stderr, rErr)
	}()

	code := func() (code int) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				code = -1
			}
		}()
		return run()
	}()

	_ = wOut.Close()
	_ = wErr.Close()
	wg.Wait()
	_ = rOut.Close()
	_ = rErr.Close()
	return stdout.String(), stderr.String(), code
}

func (f *File) apply(t *testing.T, idx int, got Expect, update bool) []string {
	want := &f.Cases[idx].Expect
	var expectNode *yaml.Node
	if update {
		expectNode = ensureMapValue(f.caseNodes[idx], "expect")
	}

	var changes []string
	if got.ExitCode != want.ExitCode {
		if update {
			want.ExitCode = got.ExitCode
			setInt(ensureMapValue(expectNode, "exitCode"), got.ExitCode)
			changes = append(changes, fmt.Sprintf("exitCode=%d", got.ExitCode))
		} else {
			t.Errorf("exit code mismatch:\nwant: %d\ngot:  %d", want.ExitCode, got.ExitCode)
		}
	}
	if got.Stdout != want.Stdout {
		if update {
			want.Stdout = got.Stdout
			setString(ensureMapValue(expectNode, "stdout"), got.Stdout)
			changes = append(changes, fmt.Sprintf("stdout=%q", summarize(got.Stdout)))
		} else {
			t.Errorf("stdout mismatch:\nwant:\n%s\ngot:\n%s", want.Stdout, got.Stdout)
		}
	}
	if got.Stderr != want.Stderr {
		if update {
			want.Stderr = got.Stderr
			setString(ensureMapValue(expectNode, "stderr"), got.Stderr)
			changes = append(changes, fmt.Sprintf("stderr=%q", summarize(got.Stderr)))
		} else {
			t.Errorf("stderr mismatch:\nwant:\n%s\ngot:\n%s", want.Stderr, got.Stderr)
		}
	}
	return changes
}

func (f *File) write() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f.root.Content[0]); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(f.path, buf.Bytes(), 0o644)
}

func mapValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func ensureMapValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		m.Kind = yaml.MappingNode
		m.Tag = "!!map"
		m.Content = nil
	}
	if v := mapValue(m, key); v != nil {
		return v
	}
	k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str"}
	m.Content = append(m.Content, k, v)
	return v
}

func setString(n *yaml.Node, val string) {
	n.Kind = yaml.ScalarNode
	n.Tag = "!!str"
	// a lone newline would otherwise be written as an empty literal block
	if val == "\n" || val == "\r\n" {
		n.Style = yaml.DoubleQuotedStyle
	} else {
		n.Style = 0
	}
	n.Value = val
}

func setInt(n *yaml.Node, val int) {
	n.Kind = yaml.ScalarNode
	n.Tag = "!!int"
	n.Style = 0
	n.Value = strconv.Itoa(val)
}

func summarize(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	if len(s) > 80 {
		return s[:77] + "..."
	}
	return s
}
