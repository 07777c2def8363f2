package composer

import "strings"

var expertise = []string{
	"Global stock markets (US, India, Europe, Asia)",
	"Forex trading and currency analysis",
	"Commodity markets and precious metals",
	"Cryptocurrency markets",
	"Economic indicators and market trends",
	"Personal finance and investment strategies",
	"Risk management and portfolio optimization",
}

var answerShape = []string{
	"Relevant market data and analysis",
	"Investment insights and recommendations",
	"Risk factors to consider",
	"Current market trends",
}

// buildPrompt creates the advisor prompt sent to every candidate model.
func buildPrompt(userQuery, contextData string) string {
	var sb strings.Builder

	sb.WriteString("You are a highly knowledgeable financial advisor and market analyst with expertise in:\n")
	for _, e := range expertise {
		sb.WriteString("- ")
		sb.WriteString(e)
		sb.WriteString("\n")
	}

	sb.WriteString("\nCurrent market context:\n")
	sb.WriteString(contextData)
	sb.WriteString("\n\nUser question: ")
	sb.WriteString(userQuery)

	sb.WriteString("\n\nProvide a comprehensive, accurate, and actionable response. Include:\n")
	for _, a := range answerShape {
		sb.WriteString("- ")
		sb.WriteString(a)
		sb.WriteString("\n")
	}
	sb.WriteString("\nKeep the response conversational yet professional, around 150-200 words.\n")

	return sb.String()
}
