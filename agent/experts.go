package agent

import (
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a value investor studying the yearly financial statements of a single stock
			to decide whether to invest in it.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
			Answer in markdown.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounded on Google Search, for news and qualitative information.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert in equity research,
		aware of the latest news about companies, their industry and their competitors.
		Ask the Researcher whenever you need recent or grounding information that is not in the financial statements.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in equity research, you can search and find about anything related to
			listed companies, their markets and competitors. You leverage Google Search to
			ground your assertions in a solid truth.
			`}}},
		},
	}
}

// NewAnalyst returns an expert reading the financial statements of the workbook.
func NewAnalyst(w *Workbook) *Expert {
	lib := w.Functions()
	return &Expert{
		Name: "Analyst",
		Description: `This is the financial Analyst. He reads the yearly financial statements of the stock,
		their trends and the investment evaluation against the current share price.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial analyst following the value investing school.
			You know how to use the Tools to read the financial statements of the stock: raw figures
			entered from the annual reports and ratios derived from them.

			A "-" in a table means the figure is not available. Never invent figures, use the Tools.
			Percentage changes are year over year, except for the earliest year where it is the
			compound annual growth rate (CAGR) up to the latest year.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewCommentator returns an expert answering a single prompt over a financial table.
func NewCommentator() *Expert {
	return &Expert{
		Name:      "Commentator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial analyst following the value investing school.
			You receive a question and the yearly financial statements of a stock as a markdown table.
			A "-" means the figure is not available, never invent figures.
			Answer in a few short markdown paragraphs, quote the figures you rely on.
			`}}},
		},
	}
}
