package sieve

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// HeaderMode tells the CSV/TSV reader whether the first row is a header.
type HeaderMode string

const (
	// HeaderAuto treats the first row as a header when it names the symptom
	// and category columns instead of holding a valid category.
	HeaderAuto HeaderMode = ""
	// HeaderPresent always skips the first row.
	HeaderPresent HeaderMode = "present"
	// HeaderAbsent reads the first row as data.
	HeaderAbsent HeaderMode = "absent"
)

// KnowledgeParseOptions controls how CSV/TSV knowledge files are read.
// Column values are a header name or a 1-based "#n"; empty means detect by
// Candidates, or by position (symptom, category, diagnosis) in headerless
// files.
type KnowledgeParseOptions struct {
	SymptomColumn   string           `json:"symptomColumn,omitempty"`
	CategoryColumn  string           `json:"categoryColumn,omitempty"`
	DiagnosisColumn string           `json:"diagnosisColumn,omitempty"`
	Header          HeaderMode       `json:"header,omitempty"`
	Candidates      ColumnCandidates `json:"-"`
}

// LoadKnowledgeFile reads a knowledge base from JSON, YAML, TOML, CSV or TSV,
// chosen by file extension.
func LoadKnowledgeFile(path string) (*KnowledgeBase, error) {
	return LoadKnowledgeFileWithOptions(path, KnowledgeParseOptions{})
}

// LoadKnowledgeFileWithOptions is LoadKnowledgeFile with explicit column
// mappings for delimited files.
func LoadKnowledgeFileWithOptions(path string, opts KnowledgeParseOptions) (*KnowledgeBase, error) {
	var (
		entries []Entry
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".yaml", ".yml", ".toml":
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read knowledge file: %w", err)
		}
		entries, err = decodeDocument(data, ext)
	case ".csv":
		entries, err = parseDelimitedKnowledge(path, ',', opts)
	case ".tsv":
		entries, err = parseDelimitedKnowledge(path, '\t', opts)
	default:
		return nil, fmt.Errorf("unsupported knowledge file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	kb, err := NewKnowledgeBase(entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return kb, nil
}

func decodeDocument(data []byte, ext string) ([]Entry, error) {
	var doc Document
	switch ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".toml":
		meta, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	}
	return doc.Symptoms, nil
}

// SaveKnowledgeFile writes kb as JSON, YAML or TOML depending on the
// extension of path. The file is replaced atomically.
func SaveKnowledgeFile(path string, kb *KnowledgeBase) error {
	data, err := EncodeKnowledge(kb, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create knowledge dir: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp knowledge file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename knowledge file: %w", err)
	}
	return nil
}

// IsWritableKnowledgeExt reports whether SaveKnowledgeFile can write files
// with extension ext. Delimited formats are read-only.
func IsWritableKnowledgeExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

// EncodeKnowledge serializes kb for the given extension (".json", ".yaml",
// ".yml" or ".toml").
func EncodeKnowledge(kb *KnowledgeBase, ext string) ([]byte, error) {
	if kb == nil {
		return nil, errors.New("knowledge base is nil")
	}
	doc := Document{Symptoms: kb.Entries()}
	switch ext {
	case ".json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case ".yaml", ".yml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported knowledge file type %q", ext)
	}
}

// ParseSymptomFile reads symptom labels separated by newlines, commas or
// semicolons.
func ParseSymptomFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read symptom file: %w", err)
	}
	return ParseSymptomList(string(data)), nil
}

// ParseSymptomList splits raw input into normalized labels, dropping blanks
// and repeats.
func ParseSymptomList(data string) []string {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	tokens := strings.FieldsFunc(data, func(r rune) bool {
		return r == '\n' || r == ',' || r == ';'
	})
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{})
	for _, token := range tokens {
		normalized := NormalizeText(token)
		if normalized == "" {
			continue
		}
		key := normalizeKey(normalized)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

func parseDelimitedKnowledge(path string, comma rune, opts KnowledgeParseOptions) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	return readDelimitedKnowledge(f, comma, opts)
}

func readDelimitedKnowledge(r io.Reader, comma rune, opts KnowledgeParseOptions) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty file")
	}
	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = cleanCell(cell)
	}
	cols, skipHeader, err := resolveKnowledgeColumns(header, opts)
	if err != nil {
		return nil, err
	}
	start := 0
	if skipHeader {
		start = 1
	}
	var entries []Entry
	positions := make(map[string]int)
	for n, row := range rows[start:] {
		line := n + start + 1
		sym := cellAt(row, cols.symptom)
		cat := cellAt(row, cols.category)
		diag := cellAt(row, cols.diagnosis)
		if sym == "" && cat == "" && diag == "" {
			continue
		}
		if sym == "" {
			return nil, fmt.Errorf("line %d: missing symptom", line)
		}
		key := normalizeKey(sym)
		pos, ok := positions[key]
		if !ok {
			pos = len(entries)
			positions[key] = pos
			entries = append(entries, Entry{Name: NormalizeText(sym), Causes: map[string][]string{}})
		}
		if cat == "" && diag == "" {
			continue
		}
		category, err := ParseCategory(cat)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if diag == "" {
			continue
		}
		causes := entries[pos].Causes
		causes[string(category)] = append(causes[string(category)], diag)
	}
	return entries, nil
}

type knowledgeColumns struct {
	symptom   int
	category  int
	diagnosis int
}

// resolveKnowledgeColumns picks the column indexes from the first row and
// reports whether that row is a header.
func resolveKnowledgeColumns(first []string, opts KnowledgeParseOptions) (knowledgeColumns, bool, error) {
	candidates := opts.Candidates.withDefaults()
	cols := knowledgeColumns{symptom: -1, category: -1, diagnosis: -1}
	byName := false
	for _, pick := range []struct {
		explicit string
		dst      *int
	}{
		{opts.SymptomColumn, &cols.symptom},
		{opts.CategoryColumn, &cols.category},
		{opts.DiagnosisColumn, &cols.diagnosis},
	} {
		if strings.TrimSpace(pick.explicit) == "" {
			continue
		}
		idx, named, err := matchExplicitColumn(first, pick.explicit, opts.Header != HeaderAbsent)
		if err != nil {
			return cols, false, err
		}
		*pick.dst = idx
		byName = byName || named
	}

	var hasHeader bool
	switch opts.Header {
	case HeaderPresent:
		hasHeader = true
	case HeaderAbsent:
		hasHeader = false
	case HeaderAuto:
		hasHeader = byName || looksLikeHeader(first, cols, candidates)
	default:
		return cols, false, fmt.Errorf("unknown header mode %q", opts.Header)
	}

	if hasHeader {
		if cols.symptom < 0 {
			cols.symptom = findColumn(first, candidates.Symptom)
		}
		if cols.category < 0 {
			cols.category = findColumn(first, candidates.Category)
		}
		if cols.diagnosis < 0 {
			cols.diagnosis = findColumn(first, candidates.Diagnosis)
		}
	} else {
		if cols.symptom < 0 {
			cols.symptom = 0
		}
		if cols.category < 0 {
			cols.category = 1
		}
		if cols.diagnosis < 0 {
			cols.diagnosis = 2
		}
	}
	if cols.symptom < 0 || cols.category < 0 || cols.diagnosis < 0 {
		return cols, false, errors.New("no usable symptom/category/diagnosis columns found")
	}
	return cols, hasHeader, nil
}

// looksLikeHeader reports whether the first row names both the symptom and
// the category column. A row whose category cell parses as a category is
// data.
func looksLikeHeader(first []string, cols knowledgeColumns, candidates ColumnCandidates) bool {
	sym, cat := cols.symptom, cols.category
	if sym < 0 {
		sym = findColumn(first, candidates.Symptom)
	}
	if cat < 0 {
		cat = findColumn(first, candidates.Category)
	}
	if sym < 0 || cat < 0 || sym == cat {
		return false
	}
	catCell := cellAt(first, cat)
	if _, err := ParseCategory(catCell); err == nil {
		return false
	}
	return matchesAny(cellAt(first, sym), candidates.Symptom) && matchesAny(catCell, candidates.Category)
}

// matchExplicitColumn resolves a header name (when byName is set) or a
// 1-based "#n" index. named reports a match by header name.
func matchExplicitColumn(header []string, explicit string, byName bool) (idx int, named bool, err error) {
	trimmed := strings.TrimSpace(explicit)
	if byName {
		for i, col := range header {
			if strings.EqualFold(col, trimmed) {
				return i, true, nil
			}
		}
	}
	if strings.HasPrefix(trimmed, "#") {
		idx, err := parseColumnIndex(trimmed)
		if err != nil {
			return -1, false, err
		}
		if idx >= len(header) {
			return -1, false, fmt.Errorf("column index %s is out of range", trimmed)
		}
		return idx, false, nil
	}
	if !byName {
		return -1, false, fmt.Errorf("column %q must be an index like #1 when the file has no header", explicit)
	}
	return -1, false, fmt.Errorf("column %q not found", explicit)
}

func parseColumnIndex(token string) (int, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(token, "#"))
	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		return -1, fmt.Errorf("invalid column index %q", token)
	}
	if idx <= 0 {
		return -1, fmt.Errorf("column indices are 1-based: %q", token)
	}
	return idx - 1, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return cleanCell(row[idx])
}

func cleanCell(v string) string {
	v = strings.TrimPrefix(v, "\ufeff")
	return strings.TrimSpace(v)
}
