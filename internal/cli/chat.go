package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"supportbot/internal/usecase"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive support session",
	Long: `Start an interactive question-and-answer session against the
knowledge base. Session commands:

  /add <title> | <content> [| <category>]   add a document
  /stats                                    show session metrics
  /export <file>                            write the conversation to a JSON file
  /quit                                     end the session`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

type chatTurn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	metrics := usecase.NewMetricsTracker()

	uc, store, cleanup, err := buildPipeline(ctx, metrics)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Printf("Support session started (%d documents loaded). Type /quit to exit.\n\n", store.Count())

	var history []chatTurn
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := runChatCommand(ctx, line, uc, metrics, history); quit {
				break
			}
			continue
		}

		history = append(history, chatTurn{Role: "user", Content: line, Timestamp: time.Now()})

		resp := uc.Answer(ctx, line)
		fmt.Printf("\n%s\n", resp.Answer)
		fmt.Printf("(confidence: %.2f", resp.Confidence)
		if len(resp.Sources) > 0 {
			titles := make([]string, len(resp.Sources))
			for i, s := range resp.Sources {
				titles[i] = s.Title
			}
			fmt.Printf(", sources: %s", strings.Join(titles, ", "))
		}
		fmt.Print(")\n\n")

		history = append(history, chatTurn{Role: "assistant", Content: resp.Answer, Timestamp: time.Now()})
	}

	return scanner.Err()
}

// runChatCommand handles a /-prefixed session command. Returns true when the
// session should end.
func runChatCommand(ctx context.Context, line string, uc *usecase.AnswerUseCase, metrics *usecase.MetricsTracker, history []chatTurn) bool {
	command, rest, _ := strings.Cut(line, " ")

	switch command {
	case "/quit", "/exit":
		return true

	case "/add":
		parts := strings.Split(rest, "|")
		if len(parts) < 2 {
			fmt.Println("usage: /add <title> | <content> [| <category>]")
			return false
		}
		title := strings.TrimSpace(parts[0])
		content := strings.TrimSpace(parts[1])
		category := ""
		if len(parts) > 2 {
			category = strings.TrimSpace(parts[2])
		}
		if err := uc.AddDocument(ctx, title, content, category); err != nil {
			fmt.Printf("failed to add document: %v\n", err)
			return false
		}
		fmt.Printf("Added %q.\n", title)

	case "/stats":
		s := metrics.Summary()
		fmt.Printf("Queries: %d  Resolved: %d (%.0f%%)  Avg confidence: %.2f  Avg response time: %s\n",
			s.TotalQueries, s.ResolvedQueries, s.ResolutionRate*100, s.AvgConfidence, s.AvgResponseTime.Round(time.Millisecond))

	case "/export":
		path := strings.TrimSpace(rest)
		if path == "" {
			fmt.Println("usage: /export <file>")
			return false
		}
		if err := exportConversation(path, history, metrics); err != nil {
			fmt.Printf("export failed: %v\n", err)
			return false
		}
		fmt.Printf("Conversation written to %s\n", path)

	default:
		fmt.Printf("unknown command: %s\n", command)
	}
	return false
}

func exportConversation(path string, history []chatTurn, metrics *usecase.MetricsTracker) error {
	export := struct {
		Timestamp time.Time         `json:"timestamp"`
		Messages  []chatTurn        `json:"messages"`
		Metrics   usecase.Summary   `json:"metrics"`
	}{
		Timestamp: time.Now(),
		Messages:  history,
		Metrics:   metrics.Summary(),
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
