package main

import (
	"errors"
	"fmt"
	"os"

	"devops-reference/internal/catalog"
	"devops-reference/internal/domain"
	"devops-reference/internal/index"
	"devops-reference/internal/loader"
	"devops-reference/internal/logger"
	"devops-reference/internal/parser"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoQuestions = errors.New("no questions found")

var validateCmd = &cobra.Command{
	Use:   "validate [questions.json]",
	Short: "Check a structured file against the schema and report per-topic counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "questions.json"
		if len(args) == 1 {
			path = args[0]
		}
		counts, err := validateFile(path)
		if err != nil {
			return err
		}
		for _, c := range counts {
			if c.Topic.Kind != domain.TopicKindQuestion {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-40s %3d / %3d\n", c.Topic.Name, c.ActualCount, c.Topic.DeclaredCount)
		}
		return nil
	},
}

// convert parses the README at in, numbering questions from its table of
// contents, and writes the structured file to out. It refuses to write an
// empty file.
func convert(in, out string) (int, error) {
	raw, err := os.ReadFile(in)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", in, err)
	}

	questions := parser.ParseDocument(string(raw))
	if len(questions) == 0 {
		return 0, fmt.Errorf("%s: %w", in, errNoQuestions)
	}

	data, err := loader.EncodeStructured(questions)
	if err != nil {
		return 0, fmt.Errorf("encode questions: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", out, err)
	}

	logger.Get().Info("Structured question file written",
		zap.String("in", in),
		zap.String("out", out),
		zap.Int("count", len(questions)),
	)
	return len(questions), nil
}

func validateFile(path string) ([]domain.TopicCount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	questions, err := loader.DecodeStructured(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoQuestions)
	}

	counts := index.Reconcile(questions, catalog.Default().Topics)
	logger.Get().Info("Structured question file is valid",
		zap.String("path", path),
		zap.Int("count", len(questions)),
	)
	return counts, nil
}
