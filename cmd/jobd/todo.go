package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/jobd/internal/todo"
	"github.com/fyrsmithlabs/jobd/internal/ui"
)

var todoCmd = &cobra.Command{
	Use:   "todo <prompt>",
	Short: "Generate a TODO list from a natural language prompt",
	Long: `Break a natural language prompt into actionable TODO items.

With an API key configured the decomposition is model-driven; otherwise
keyword heuristics split the prompt on list markers and conjunctions.

Examples:
  jobd todo "implement auth and add tests"
  jobd todo "1. create the user model
  2. add REST endpoints"`,
	Args: cobra.ExactArgs(1),
	RunE: runTodo,
}

func runTodo(cmd *cobra.Command, args []string) error {
	prompt := args[0]

	items := generateTodos(cmd, prompt)
	fmt.Fprintf(cmd.OutOrStdout(), "TODO list for: %s\n\n", prompt)
	ui.NewProgress(cmd.OutOrStdout()).PrintTodos(items)
	return nil
}

// generateTodos prefers the model-driven path, falling back to keyword
// heuristics on any error or when no client is configured.
func generateTodos(cmd *cobra.Command, prompt string) []todo.Item {
	if client := newClient(); client != nil {
		items, err := todo.GenerateWithLLM(cmd.Context(), client, prompt)
		if err == nil {
			return items
		}
		logger.Debug("LLM TODO generation failed, falling back to keywords", zap.Error(err))
	}
	return todo.GenerateFromKeywords(prompt)
}
