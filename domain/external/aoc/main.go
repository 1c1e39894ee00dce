//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package aoc

import "fmt"

// Verdict classifies the site's response to a submitted answer.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
	// VerdictThrottled means the site rejected the attempt because a
	// previous one was too recent.
	VerdictThrottled Verdict = "throttled"
	// VerdictCompleted means the puzzle part was already solved earlier.
	VerdictCompleted Verdict = "completed"
	VerdictUnknown   Verdict = "unknown"
)

// Client talks to adventofcode.com. The session token is the value of the
// site's session cookie.
type Client interface {
	// FetchInput returns the raw puzzle input for a day.
	FetchInput(session string, year int, day int) (string, error)
	// SubmitAnswer posts an answer for part 1 or 2 and classifies the
	// response. The returned message is the site's feedback sentence.
	SubmitAnswer(session string, year int, day int, part int, answer string) (Verdict, string, error)
}

// PuzzleURL is the browser URL of a day's puzzle page.
func PuzzleURL(year int, day int) string {
	return fmt.Sprintf("https://adventofcode.com/%d/day/%d", year, day)
}
