package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/khalid-nowaf/ordinaltree/pkg/trie"
)

// InputFlags are shared by every command that builds a tree from word lists.
type InputFlags struct {
	Files      []string `arg:"" type:"existingfile" help:"Word lists in CSV, TSV, JSON or plain text format"`
	WordKey    string   `help:"Column or key holding the word" default:"word"`
	PatternKey string   `help:"Column or key holding the word pattern" default:"pattern"`
	PatternDel string   `help:"Delimiter of the pattern tokens, empty for one token per character" default:" "`
	Pattern    []string `help:"Global pattern, comma separated, overrides the configured one" sep:","`
}

// buildTree inserts every word of every file into a new tree.
func buildTree(ctx *Context, flags *InputFlags) (*trie.Tree, error) {
	pattern := ctx.Config.Pattern
	if len(flags.Pattern) > 0 {
		pattern = flags.Pattern
	}

	tree := trie.NewTree(
		trie.WithGlobalPattern(pattern...),
		trie.WithRootLabel(ctx.Config.RootLabel),
		trie.WithLogger(ctx.Logger),
	)

	for _, file := range flags.Files {
		inserted := 0
		err := parseFile(flags, file, func(entry *Entry) error {
			tree.InsertWord(entry.Word, entry.Pattern...)
			inserted++
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		ctx.Logger.Info("words loaded", "file", file, "words", inserted)
	}
	return tree, nil
}

type PrintCmd struct {
	InputFlags `embed:""`
}

// Run prints the tree as a box-drawing diagram.
func (cmd *PrintCmd) Run(ctx *Context) error {
	tree, err := buildTree(ctx, &cmd.InputFlags)
	if err != nil {
		return err
	}
	return tree.Fprint(ctx.Out)
}

type WordsCmd struct {
	InputFlags `embed:""`
	Format     string `help:"Output format" enum:"text,csv,tsv,json" default:"text"`
	Output     string `help:"Output file, - for standard output" default:"-"`
}

// Run writes the words in tree order.
func (cmd *WordsCmd) Run(ctx *Context) error {
	tree, err := buildTree(ctx, &cmd.InputFlags)
	if err != nil {
		return err
	}
	writer, err := newWriter(cmd.Format)
	if err != nil {
		return err
	}

	words := tree.Words()
	if cmd.Output == "-" {
		return writer.Write(ctx.Out, words)
	}

	file, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := writer.Write(file, words); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	ctx.Logger.Info("words written", "output", cmd.Output, "words", len(words))
	return nil
}

type CompleteCmd struct {
	Prefix     string `arg:"" help:"Prefix to complete"`
	InputFlags `embed:""`
}

// Run prints the words starting with the prefix, one per line.
func (cmd *CompleteCmd) Run(ctx *Context) error {
	tree, err := buildTree(ctx, &cmd.InputFlags)
	if err != nil {
		return err
	}
	return TextWriter{}.Write(ctx.Out, tree.WithPrefix(cmd.Prefix))
}

type StatsCmd struct {
	InputFlags `embed:""`
}

// Run prints the node count, word count and height.
func (cmd *StatsCmd) Run(ctx *Context) error {
	tree, err := buildTree(ctx, &cmd.InputFlags)
	if err != nil {
		return err
	}
	return writeStats(ctx.Out, tree)
}

func writeStats(w io.Writer, tree *trie.Tree) error {
	_, err := fmt.Fprintf(w, "nodes: %d\nwords: %d\nheight: %d\n", tree.Size(), len(tree.Words()), tree.Height())
	return err
}
