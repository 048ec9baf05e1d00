package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yashubustudio/sieve/sieve"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	base := []string{
		"--config", filepath.Join(dir, "config.json"),
		"--knowledge", filepath.Join(dir, "absent.json"),
	}
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, base...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestShowPrintsCombinedThenPerSymptom(t *testing.T) {
	out, _, err := execute(t, "show", "--symptoms", "fever,Cough", "--color", "off")
	require.NoError(t, err)

	combined := strings.Index(out, "Combined (Fever, Cough)")
	fever := strings.Index(out, "\nFever  ")
	cough := strings.Index(out, "\nCough  ")
	require.GreaterOrEqual(t, combined, 0, out)
	assert.Less(t, combined, fever)
	assert.Less(t, fever, cough)
	assert.Contains(t, out, "Infection          Viral URTI; Pneumonia; UTI; Sepsis; Viral bronchitis; Tuberculosis")
	assert.Contains(t, out, "* METRICC")
	assert.NotContains(t, out, "\x1b[")
}

func TestShowRejectsUnknownSymptom(t *testing.T) {
	_, _, err := execute(t, "show", "--symptoms", "Fever,Hiccups")
	require.Error(t, err)
	assert.ErrorIs(t, err, sieve.ErrInvalidSymptom)
	assert.Contains(t, err.Error(), "known: Fever, Cough")
}

func TestShowRequiresSymptoms(t *testing.T) {
	_, _, err := execute(t, "show")
	assert.ErrorContains(t, err, "no symptoms given")
}

func TestShowInvalidColor(t *testing.T) {
	_, _, err := execute(t, "show", "-s", "Rash", "--color", "sometimes")
	assert.ErrorContains(t, err, "invalid --color")
}

func TestShowWritesCSV(t *testing.T) {
	dir := t.TempDir()
	symptoms := filepath.Join(dir, "symptoms.txt")
	require.NoError(t, os.WriteFile(symptoms, []byte("Headache\nRash\n"), 0o644))
	outPath := filepath.Join(dir, "out", "result.csv")

	out, _, err := execute(t, "show", "--symptoms-file", symptoms, "--output", outPath, "--stdout=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved sieve to")
	assert.NotContains(t, out, "METRICC")

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"view", "category", "rank", "diagnosis"}, rows[0])
	assert.Equal(t, []string{"Combined (Headache, Rash)", "Metabolic", "1", "Hyponatremia"}, rows[1])
}

func TestShowTruncatesToWidth(t *testing.T) {
	out, _, err := execute(t, "show", "-s", "Fever", "--color", "off", "--width", "40")
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.HasPrefix(line, "  ") {
			assert.LessOrEqual(t, len([]rune(line)), 40, line)
		}
	}
	assert.Contains(t, out, "…")
}

func TestSymptomsListsKnowledge(t *testing.T) {
	out, _, err := execute(t, "symptoms")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Fever", lines[0])
	assert.Equal(t, "Fatigue", lines[9])
	assert.Contains(t, out, "Categories: Metabolic, Environmental, Technique, Reactive, Infection, Congenital/Cancer")
}

func TestKnowledgeExportThenLoad(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "kb.yaml")
	out, _, err := execute(t, "knowledge", "export", "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 10 symptoms")

	kb, err := sieve.LoadKnowledgeFile(dest)
	require.NoError(t, err)
	assert.Equal(t, sieve.DefaultKnowledgeBase().Symptoms(), kb.Symptoms())

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"symptoms", "--knowledge", dest, "--config", filepath.Join(t.TempDir(), "c.json")})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(buf.String(), "Fever\n"))
}

func TestKnowledgeExportRequiresOut(t *testing.T) {
	_, _, err := execute(t, "knowledge", "export")
	assert.ErrorContains(t, err, `"out" not set`)
}

func TestShowUsesColumnFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kb.csv")
	require.NoError(t, os.WriteFile(path, []byte("presentation,bucket,dx\nHeadache,Reactive,Migraine\n"), 0o644))

	run := func(args ...string) (string, error) {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append(args, "--config", filepath.Join(dir, "config.json"), "--knowledge", path))
		err := cmd.Execute()
		return out.String(), err
	}

	_, err := run("show", "-s", "Headache", "--color", "off")
	assert.ErrorIs(t, err, sieve.ErrInvalidCategory)

	out, err := run("show", "-s", "Headache", "--color", "off",
		"--symptom-column", "presentation", "--category-column", "#2", "--diagnosis-column", "dx")
	require.NoError(t, err)
	assert.Contains(t, out, "Migraine")

	_, err = run("symptoms", "--header", "sometimes")
	assert.ErrorContains(t, err, "invalid --header")
}
