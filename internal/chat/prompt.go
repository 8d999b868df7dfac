package chat

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const instruction = `You are the Campus Chaos AI assistant.
Your primary goal is to provide a direct, concise, and factual answer to the user's question.
STRICTLY ADHERE TO THE FOLLOWING:
1.  Do NOT include any conversational fluff, introductory/closing phrases (e.g., "Sure, I can help", "Okay, here's the information", "I hope this helps").
2.  Do NOT explain your reasoning process or how you arrived at the answer.
3.  Provide ONLY the direct answer to the user's question.
4.  Wrap your final, direct answer within <answer_text_only> XML-like tags. For example: <answer_text_only>The game is available on Windows.</answer_text_only>
If you cannot answer or if the question violates policy, respond with a brief, policy-compliant statement within the <answer_text_only> tags (e.g., <answer_text_only>I cannot answer that question due to content policy.</answer_text_only>).
Failure to use these tags correctly or including any text outside these tags will be considered a deviation from instructions.
`

const siteOverview = `Campus Chaos is a web-based game project.
The main features and sections of the website include:
- Homepage (index.html): Displays a welcome message, a carousel of game images, and general information about the game.
- About Us (about-us.html): Provides details about the development team, the project's mission, and contact information.
- Login/Registration (login.html, register.html): Allows users to create new accounts or sign in to existing ones.
- User Profile (profile.html): Registered users can view and manage their profile information, game statistics, and potentially update their password.
- Leaderboard: A section (likely dynamically generated or on a specific page) to display top player scores and rankings.
- The game itself is the core interactive element, where users play "Campus Chaos".
The chat widget is available on all pages to assist users.`

// DateLayout renders dates as "Monday, January 2, 2006".
const DateLayout = "Monday, January 2, 2006"

// BuildPrompt assembles the single text part sent to the model.
func BuildPrompt(message, pageContext string, now time.Time) string {
	var b strings.Builder
	b.WriteString(instruction)
	fmt.Fprintf(&b, "General Site Overview: \"%s\".\n", siteOverview)
	fmt.Fprintf(&b, "Current Date Context: Today is %s.\n", now.Format(DateLayout))
	if strings.TrimSpace(pageContext) != "" {
		fmt.Fprintf(&b, "Current Page Context: The user is currently viewing a page with the following information: \"%s\".\n", pageContext)
	}
	fmt.Fprintf(&b, "User question: \"%s\"", message)
	return b.String()
}

var answerRe = regexp.MustCompile(`(?s)<answer_text_only>(.*?)</answer_text_only>`)

// ExtractAnswer returns the trimmed text of the first answer tag. When the
// tag is missing or empty it returns raw unchanged and false.
func ExtractAnswer(raw string) (string, bool) {
	m := answerRe.FindStringSubmatch(raw)
	if m == nil {
		return raw, false
	}
	ans := strings.TrimSpace(m[1])
	if ans == "" {
		return raw, false
	}
	return ans, true
}

// BlockMessage is the user-facing reply for a blocked prompt.
func BlockMessage(reason string, ratings []Rating) string {
	switch reason {
	case "SAFETY":
		details := "No specific ratings."
		if len(ratings) > 0 {
			parts := make([]string, len(ratings))
			for i, r := range ratings {
				parts[i] = r.Category + " was " + r.Probability
			}
			details = strings.Join(parts, ", ")
		}
		return fmt.Sprintf("I cannot respond to that as it may violate safety guidelines. (Details: %s)", details)
	case "OTHER":
		return "I cannot respond to that due to content restrictions."
	default:
		return fmt.Sprintf("I cannot respond to that due to content policy (Reason: %s).", reason)
	}
}
