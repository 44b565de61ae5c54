package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/homewise/homewise/internal/batchsolve"
	"github.com/homewise/homewise/internal/blob"
	"github.com/homewise/homewise/internal/classify"
	"github.com/homewise/homewise/internal/graphdetect"
	"github.com/homewise/homewise/internal/illustrate"
	"github.com/homewise/homewise/internal/llm"
	"github.com/homewise/homewise/internal/pipeline"
	"github.com/homewise/homewise/internal/question"
	"github.com/homewise/homewise/internal/store"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

var solveCmd = &cobra.Command{
	Use:   "solve <questions.json>",
	Short: "Run the solving pipeline over a file of extracted questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		withImages, _ := cmd.Flags().GetBool("illustrations")
		callbackURL, _ := cmd.Flags().GetString("callback-url")
		userID, _ := cmd.Flags().GetString("user")

		questions, err := loadQuestions(args[0])
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}

		var images *illustrate.Generator
		if withImages {
			imageProvider, err := llm.NewImageProviderFromEnv(ctx)
			if err != nil {
				return fmt.Errorf("create image provider: %w", err)
			}
			blobs, err := blob.NewGCSStoreFromEnv(ctx)
			if err != nil {
				return fmt.Errorf("create blob store: %w", err)
			}
			images = illustrate.NewGenerator(provider, imageProvider, blobs, s.EventRepo(), illustrate.DefaultConfig())
		}

		runner := pipeline.NewRunner(
			classify.NewClassifier(provider, classify.DefaultConfig()),
			batchsolve.NewSolver(provider, s.EventRepo(), batchsolve.DefaultConfig()),
			graphdetect.NewClassifier(provider, graphdetect.DefaultConfig()),
			images,
			userID,
		)

		res, err := runner.Run(ctx, questions)
		if err != nil {
			return err
		}

		printResult(res)

		if callbackURL != "" {
			if err := pipeline.NewCallbackNotifier(callbackURL).Notify(ctx, res); err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		}
		return nil
	},
}

// questionFile is the on-disk shape of an extracted question.
type questionFile struct {
	OrderIndex       int    `json:"order_index"`
	Text             string `json:"text"`
	IsSubQuestion    bool   `json:"is_sub_question"`
	ParentContext    string `json:"parent_context"`
	SubQuestionLabel string `json:"sub_question_label"`
}

func loadQuestions(path string) ([]question.ExtractedQuestion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	var rows []questionFile
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse questions file: %w", err)
	}

	questions := make([]question.ExtractedQuestion, len(rows))
	for i, row := range rows {
		questions[i] = question.ExtractedQuestion{
			OrderIndex:       row.OrderIndex,
			Text:             row.Text,
			IsSubQuestion:    row.IsSubQuestion,
			ParentContext:    row.ParentContext,
			SubQuestionLabel: row.SubQuestionLabel,
		}
	}
	return questions, nil
}

func printResult(res *pipeline.Result) {
	fmt.Println(headerStyle.Render("Batch-solved questions"))
	if len(res.Solved) == 0 {
		fmt.Println(dimStyle.Render("  (none)"))
	}
	for _, sol := range res.Solved {
		fmt.Printf("  %s %s\n", headerStyle.Render(fmt.Sprintf("Q%d", sol.OrderIndex)), truncateText(sol.Text, 60))
		fmt.Printf("    %s %s\n", dimStyle.Render("answer:"), sol.Answer)
		for _, step := range sol.SolutionSteps {
			fmt.Printf("    %s %s\n", dimStyle.Render("step:"), step)
		}
		if g, ok := res.Graphs[sol.OrderIndex]; ok && g.Graphable {
			fmt.Printf("    %s y = %s\n", dimStyle.Render("graph:"), g.Function)
		}
		if ill, ok := res.Illustrations[strconv.Itoa(sol.OrderIndex)]; ok {
			if ill.Success {
				fmt.Printf("    %s %s\n", successStyle.Render("image:"), ill.ImageURL)
			} else {
				fmt.Printf("    %s %s\n", failStyle.Render("image failed:"), ill.ErrorMessage)
			}
		}
	}

	printBucket("Routed to standard solving", res.Standard)
	printBucket("Routed to complex solving", res.Complex)

	if res.TokensSaved > 0 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("Estimated tokens saved by batching: %d", res.TokensSaved)))
	}
}

func printBucket(title string, bucket []question.Classified) {
	fmt.Println(headerStyle.Render(title))
	if len(bucket) == 0 {
		fmt.Println(dimStyle.Render("  (none)"))
		return
	}
	for _, q := range bucket {
		fmt.Printf("  %s %s %s\n",
			headerStyle.Render(fmt.Sprintf("Q%d", q.OrderIndex)),
			truncateText(q.Text, 60),
			dimStyle.Render(fmt.Sprintf("(%s, %s)", q.Classification.Complexity, q.Classification.Category)))
	}
}

func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func init() {
	solveCmd.Flags().Bool("illustrations", false, "Generate illustrations for questions that need them")
	solveCmd.Flags().String("callback-url", "", "POST a run summary to this URL when done")
	solveCmd.Flags().String("user", "local", "User id that owns generated illustrations")
}
