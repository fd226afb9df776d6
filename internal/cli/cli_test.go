package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExtract_Stdin(t *testing.T) {
	reply := "Question 1: What is 2+2?\nA) 3\nB) 4\nC) 5\nD) 22\nAnswer: B\nExplanation: Arithmetic.\n"

	out, err := execute(t, reply, "extract", "--kind", "quiz_question", "--seed", "1")
	require.NoError(t, err)

	var decoded struct {
		Result struct {
			Questions []struct {
				Question     string `json:"question"`
				CorrectIndex int    `json:"correctIndex"`
			} `json:"questions"`
		} `json:"result"`
		Stats struct {
			Blocks int `json:"blocks"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Result.Questions, 1)
	assert.Equal(t, "What is 2+2?", decoded.Result.Questions[0].Question)
	assert.Equal(t, 1, decoded.Result.Questions[0].CorrectIndex)
	assert.Equal(t, 1, decoded.Stats.Blocks)
}

func TestExtract_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reply.txt")
	require.NoError(t, os.WriteFile(path, []byte("\"\"\"\nTitle: Foo\nDescription: Bar\n\"\"\""), 0o600))

	out, err := execute(t, "", "extract", "-k", "coding_problem", "-f", path, "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Foo"`)
}

func TestExtract_UnknownKind(t *testing.T) {
	_, err := execute(t, "x", "extract", "--kind", "haiku")
	assert.ErrorContains(t, err, "unknown kind")
}

func TestPrompt(t *testing.T) {
	out, err := execute(t, "the transcript", "prompt", "--kind", "summary")
	require.NoError(t, err)
	assert.Equal(t, "Provide a 200-word summary of this video transcript:\n\nthe transcript\n", out)
}

func TestGenerate_RequiresFlags(t *testing.T) {
	_, err := execute(t, "", "generate", "--kind", "summary")
	assert.ErrorContains(t, err, "video")
}
