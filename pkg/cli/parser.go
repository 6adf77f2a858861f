package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one word to insert, with its optional pattern.
type Entry struct {
	Word    string
	Pattern []string
}

type Record map[string]any

func parseFile(flags *InputFlags, filePath string, onEachEntry func(entry *Entry) error) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return parseCsv(flags, file, ',', onEachEntry)
	case ".tsv":
		return parseCsv(flags, file, '\t', onEachEntry)
	case ".json":
		return parseJson(flags, file, onEachEntry)
	default:
		return parseText(flags, file, onEachEntry)
	}
}

func parseJson(flags *InputFlags, r io.Reader, onEachEntry func(entry *Entry) error) error {
	decoder := json.NewDecoder(r)

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		record := Record{}
		if err := decoder.Decode(&record); err != nil {
			return err
		}
		entry, err := parseRecord(record, flags)
		if err != nil {
			return err
		}
		if err := onEachEntry(entry); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err := decoder.Token()
	return err
}

func parseCsv(flags *InputFlags, r io.Reader, separator rune, onEachEntry func(entry *Entry) error) error {
	reader := csv.NewReader(r)
	reader.Comma = separator
	reader.Comment = '#'

	// the first line is the header, it names the columns
	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("can not read the header: %w", err)
	}

	for {
		recordData, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		record := make(Record, len(headers))
		for i, value := range recordData {
			record[headers[i]] = value
		}

		entry, err := parseRecord(record, flags)
		if err != nil {
			return err
		}
		if err := onEachEntry(entry); err != nil {
			return err
		}
	}
}

// parseText reads one word per line, optionally followed by a tab and its pattern.
// blank lines and lines starting with # are skipped
func parseText(flags *InputFlags, r io.Reader, onEachEntry func(entry *Entry) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, pattern, _ := strings.Cut(line, "\t")
		entry := &Entry{
			Word:    strings.TrimSpace(word),
			Pattern: splitPattern(pattern, flags.PatternDel),
		}
		if err := onEachEntry(entry); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseRecord(record Record, flags *InputFlags) (*Entry, error) {
	raw, found := record[flags.WordKey]
	if !found {
		return nil, fmt.Errorf("no %q key for record: %v", flags.WordKey, record)
	}
	word, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("word must be a string for record: %v", record)
	}

	entry := &Entry{Word: word}
	switch pattern := record[flags.PatternKey].(type) {
	case nil:
	case string:
		entry.Pattern = splitPattern(pattern, flags.PatternDel)
	case []any:
		for _, token := range pattern {
			s, ok := token.(string)
			if !ok {
				return nil, fmt.Errorf("pattern tokens must be strings for record: %v", record)
			}
			entry.Pattern = append(entry.Pattern, s)
		}
	default:
		return nil, fmt.Errorf("can not read the pattern of record: %v", record)
	}
	return entry, nil
}

// splitPattern splits on the delimiter and drops empty tokens.
// an empty delimiter makes every character a token
func splitPattern(pattern string, delimiter string) []string {
	var tokens []string
	for _, token := range strings.Split(pattern, delimiter) {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
