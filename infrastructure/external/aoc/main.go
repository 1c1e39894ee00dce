package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	domainAoc "github.com/adventcli/aoc/domain/external/aoc"
)

// AocClient talks to adventofcode.com with the user's session cookie.
type AocClient struct {
	// BaseURL is overridable for tests.
	BaseURL string
}

func NewAocClient() *AocClient {
	return &AocClient{BaseURL: "https://adventofcode.com"}
}

func (c *AocClient) FetchInput(session string, year int, day int) (string, error) {
	client := resty.New()

	resp, err := client.R().
		SetHeader("Cookie", "session="+session).
		Get(fmt.Sprintf("%s/%d/day/%d/input", c.BaseURL, year, day))

	if err != nil {
		return "", err
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("input request failed with status code: %d", resp.StatusCode())
	}

	return resp.String(), nil
}

func (c *AocClient) SubmitAnswer(session string, year int, day int, part int, answer string) (domainAoc.Verdict, string, error) {
	client := resty.New()

	resp, err := client.R().
		SetHeader("Cookie", "session="+session).
		SetFormData(map[string]string{
			"level":  strconv.Itoa(part),
			"answer": answer,
		}).
		Post(fmt.Sprintf("%s/%d/day/%d/answer", c.BaseURL, year, day))

	if err != nil {
		return domainAoc.VerdictUnknown, "", err
	}

	if resp.StatusCode() != 200 {
		return domainAoc.VerdictUnknown, "", fmt.Errorf("answer request failed with status code: %d", resp.StatusCode())
	}

	verdict, message := classify(resp.String())
	return verdict, message, nil
}

var verdictMarkers = []struct {
	needle  string
	verdict domainAoc.Verdict
}{
	{"That's the right answer", domainAoc.VerdictCorrect},
	{"That's not the right answer", domainAoc.VerdictIncorrect},
	{"You gave an answer too recently", domainAoc.VerdictThrottled},
	{"Did you already complete it", domainAoc.VerdictCompleted},
}

// classify maps the response page onto a verdict and returns the site's
// feedback sentence.
func classify(body string) (domainAoc.Verdict, string) {
	for _, m := range verdictMarkers {
		idx := strings.Index(body, m.needle)
		if idx < 0 {
			continue
		}

		sentence := body[idx:]
		if end := strings.Index(sentence, "."); end >= 0 {
			sentence = sentence[:end+1]
		}
		return m.verdict, sentence
	}
	return domainAoc.VerdictUnknown, ""
}
