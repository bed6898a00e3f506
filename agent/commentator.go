package agent

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/etnz/fundamentals"
	"github.com/etnz/fundamentals/renderer"
	"google.golang.org/genai"
)

// Commentator generates a written commentary of a financial history for a given prompt.
type Commentator interface {
	// Prompts returns the prompt library: prompt ID to prompt text.
	Prompts(ctx context.Context) (map[string]string, error)
	// Comment runs the prompt promptID over the history of a stock.
	Comment(ctx context.Context, stockID int64, promptID string, h fundamentals.FinancialHistory) (string, error)
}

//go:embed prompts/*.md
var prompts embed.FS

// Prompts returns the embedded prompt library, keyed by file name without extension.
func Prompts() (map[string]string, error) {
	files, err := fs.Glob(prompts, "prompts/*.md")
	if err != nil {
		return nil, err
	}
	library := make(map[string]string, len(files))
	for _, file := range files {
		content, err := prompts.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("cannot read prompt %q: %w", file, err)
		}
		id := strings.TrimSuffix(path.Base(file), ".md")
		library[id] = strings.TrimSpace(string(content))
	}
	return library, nil
}

// Gemini generates commentaries with a Gemini model, using the embedded prompt library.
type Gemini struct {
	Client *genai.Client
	Format renderer.Formatter
}

var _ Commentator = (*Gemini)(nil)

// NewGemini creates a Gemini commentator. The API key is read from the environment.
func NewGemini(ctx context.Context, f renderer.Formatter) (*Gemini, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize Gemini's client: %w", err)
	}
	return &Gemini{Client: client, Format: f}, nil
}

func (g *Gemini) Prompts(context.Context) (map[string]string, error) { return Prompts() }

// Comment sends the prompt and the financial table to a fresh chat. stockID is only used for the
// table title.
func (g *Gemini) Comment(ctx context.Context, stockID int64, promptID string, h fundamentals.FinancialHistory) (string, error) {
	text, err := CommentRequest(promptID, stockID, h, g.Format)
	if err != nil {
		return "", err
	}
	e := NewCommentator()
	if err := e.Start(ctx, g.Client); err != nil {
		return "", err
	}
	resp, err := e.Ask(ctx, &genai.Part{Text: text})
	if err != nil {
		return "", fmt.Errorf("cannot comment on prompt %q: %w", promptID, err)
	}
	return Text(resp), nil
}

// CommentRequest builds the message sent to the model for a prompt.
func CommentRequest(promptID string, stockID int64, h fundamentals.FinancialHistory, f renderer.Formatter) (string, error) {
	library, err := Prompts()
	if err != nil {
		return "", err
	}
	prompt, ok := library[promptID]
	if !ok {
		return "", fmt.Errorf("unknown prompt %q", promptID)
	}
	if h.Len() == 0 {
		return "", fmt.Errorf("stock %d has no financial history to comment on", stockID)
	}
	table := renderer.TableMarkdown(h.Derive(), f, renderer.TableOptions{
		Title:     fmt.Sprintf("Stock %d", stockID),
		Trends:    true,
		HideEmpty: true,
	})
	return prompt + "\n\n" + table, nil
}
