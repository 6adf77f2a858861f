package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Writer writes the words of a tree, already in tree order.
type Writer interface {
	Write(w io.Writer, words []string) error
}

// newWriter returns the writer for a --format value.
func newWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return TextWriter{}, nil
	case "csv":
		return CsvWriter{}, nil
	case "tsv":
		return CsvWriter{isTSV: true}, nil
	case "json":
		return JsonWriter{}, nil
	}
	return nil, fmt.Errorf("unknown format: %q", format)
}

type TextWriter struct{}

func (TextWriter) Write(w io.Writer, words []string) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}

type JsonWriter struct{}

type rankedWord struct {
	Rank int    `json:"rank"`
	Word string `json:"word"`
}

func (JsonWriter) Write(w io.Writer, words []string) error {
	encoder := json.NewEncoder(w)

	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, word := range words {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if err := encoder.Encode(rankedWord{Rank: i + 1, Word: word}); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

type CsvWriter struct {
	isTSV bool
}

func (cw CsvWriter) Write(w io.Writer, words []string) error {
	writer := csv.NewWriter(w)
	if cw.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write([]string{"rank", "word"}); err != nil {
		return err
	}
	for i, word := range words {
		if err := writer.Write([]string{strconv.Itoa(i + 1), word}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
