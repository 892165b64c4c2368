// Package assistant maps chat messages to canned help responses. It is
// a static keyword table, not a dialogue engine.
package assistant

import "strings"

type rule struct {
	keywords []string
	response string
}

// rules are checked in order; the first rule with a matching keyword
// wins.
var rules = []rule{
	{
		keywords: []string{"hello", "hi", "hey"},
		response: "Hello! I'm your bill sharing assistant. I can help you split bills, track expenses, manage friends, and generate reports.",
	},
	{
		keywords: []string{"split", "divide", "share"},
		response: "I can help you split bills! Use the bill creation form to add a new bill with friends, visit details, and automatic calculations.",
	},
	{
		keywords: []string{"friend", "friends"},
		response: "You can manage your friends list in the Friends section. Add friends with their contact details to easily include them in bills.",
	},
	{
		keywords: []string{"csv", "export", "download", "report"},
		response: "I can help you download CSV reports! Go to the Bills section to download overall reports or individual friend summaries.",
	},
	{
		keywords: []string{"total", "amount", "cost"},
		response: "I automatically calculate totals including tax and discounts. Create a bill and I'll handle all the math for you!",
	},
	{
		keywords: []string{"thanks", "thank you"},
		response: "You're welcome! Let me know if you need help with bill splitting, friend management, or CSV exports.",
	},
}

const fallback = "I'm here to help with bill sharing! You can create bills with friends, track visit details, split expenses, and download CSV reports. Try asking about managing friends or exporting data."

// Respond returns the canned response for the first rule whose keyword
// appears in the message, or the fallback text.
func Respond(message string) string {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.response
			}
		}
	}
	return fallback
}
