package submitCommand

import (
	"fmt"

	"github.com/spf13/cobra"

	domainAoc "github.com/adventcli/aoc/domain/external/aoc"
	"github.com/adventcli/aoc/domain/model/params"
	"github.com/adventcli/aoc/domain/model/placeholder"
	"github.com/adventcli/aoc/domain/repository/history"
	"github.com/adventcli/aoc/domain/service/projectLocate"
	"github.com/adventcli/aoc/domain/system/ksuid"
	"github.com/adventcli/aoc/domain/system/timer"
	"github.com/adventcli/aoc/logging"
)

type SubmitCommand struct {
	CobraCommand *cobra.Command
}

func NewSubmitCommand(
	explicit *params.Explicit,
	projectLocateService *projectLocate.ProjectLocateService,
	aocClient domainAoc.Client,
	historyRepository history.Repository,
	ksuidGenerator ksuid.IKsuid,
	clock timer.ITimer,
) *SubmitCommand {
	var partFlag int

	cmd := &cobra.Command{
		Use:   "submit <answer>",
		Short: "Submit an answer for the day's puzzle",
		Long: `Submit an answer for part 1 or 2 of the resolved day's puzzle and print
the site's verdict. Every attempt is recorded under ~/.config/aoc/history;
an answer the site already judged is not sent again.`,
		Args: cobra.ExactArgs(1),
		RunE: runSubmit(&partFlag, explicit, projectLocateService, aocClient, historyRepository, ksuidGenerator, clock),
	}

	cmd.Flags().IntVarP(&partFlag, "part", "p", 1, "puzzle part (1 or 2)")

	return &SubmitCommand{CobraCommand: cmd}
}

func runSubmit(
	partFlag *int,
	explicit *params.Explicit,
	projectLocateService *projectLocate.ProjectLocateService,
	aocClient domainAoc.Client,
	historyRepository history.Repository,
	ksuidGenerator ksuid.IKsuid,
	clock timer.ITimer,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := logging.GetLogger("submit")

		if *partFlag < 1 || *partFlag > 2 {
			return fmt.Errorf("part must be 1 or 2, got %d", *partFlag)
		}

		loc, err := projectLocateService.Locate(*explicit,
			placeholder.NameYear, placeholder.NameDay)
		if err != nil {
			return err
		}

		session := loc.Session()
		if session == "" {
			return fmt.Errorf("no session token configured (set cookie in the config file or AOC_SESSION)")
		}

		answer := args[0]
		year := *loc.Values.Year
		day := *loc.Values.Day

		records, err := historyRepository.List()
		if err != nil {
			return err
		}
		for _, r := range records {
			if r.Year == year && r.Day == day && r.Part == *partFlag && r.Answer == answer && judged(r.Verdict) {
				fmt.Printf("Answer %q was already submitted for %d day %d part %d; verdict was %s\n",
					answer, year, day, *partFlag, r.Verdict)
				return nil
			}
		}

		verdict, message, err := aocClient.SubmitAnswer(session, year, day, *partFlag, answer)
		if err != nil {
			return err
		}

		record := history.Record{
			ID:      ksuidGenerator.New(),
			Time:    clock.Now(),
			Year:    year,
			Day:     day,
			Part:    *partFlag,
			Answer:  answer,
			Verdict: string(verdict),
		}
		if err := historyRepository.Append(record); err != nil {
			return err
		}
		log.Debug().Str("id", record.ID).Msg("recorded submission")

		if message != "" {
			fmt.Println(message)
		} else {
			fmt.Printf("verdict: %s\n", verdict)
		}
		return nil
	}
}

// judged reports whether a past verdict is final for a given answer.
// Throttled and unknown attempts are worth retrying.
func judged(verdict string) bool {
	return verdict == string(domainAoc.VerdictCorrect) ||
		verdict == string(domainAoc.VerdictIncorrect) ||
		verdict == string(domainAoc.VerdictCompleted)
}
