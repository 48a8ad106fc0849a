package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/subcommands"

	"github.com/odemir/folio/internal/models"
	"github.com/odemir/folio/internal/vocab"
)

type quizCmd struct {
	level string
}

func (*quizCmd) Name() string     { return "quiz" }
func (*quizCmd) Synopsis() string { return "play a ten question vocabulary quiz" }
func (*quizCmd) Usage() string {
	return `quiz [-level B1]

  Runs a multiple-choice quiz over the word list. Each correct answer is
  worth ten points; a wrong answer resets the streak but never costs
  points.
`
}
func (c *quizCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.level, "level", "", "restrict the pool to one CEFR level")
}

func (c *quizCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		return fail(err)
	}

	page, err := e.api.Words(ctx, &models.WordFilter{Level: c.level, Limit: 50})
	if err != nil {
		return fail(err)
	}
	pool := make([]models.Word, 0, len(page.Items))
	for _, w := range page.Items {
		pool = append(pool, *w)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session, err := vocab.NewSession(ctx, pool, e.api, rng)
	if err != nil {
		return fail(err)
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		q, ok := session.Current()
		if !ok {
			break
		}

		fmt.Printf("\nQuestion %d/%d", session.Index+1, len(session.Questions))
		if session.Streak > 1 {
			fmt.Printf("  (streak %d)", session.Streak)
		}
		fmt.Println()
		if q.Type == vocab.TermToMeaning {
			fmt.Printf("What does %q mean?\n", q.Word.Term)
		} else {
			fmt.Printf("Which word means %q?\n", q.Word.Meaning)
		}
		for i, opt := range q.Options {
			label := opt.Meaning
			if q.Type == vocab.MeaningToTerm {
				label = opt.Term
			}
			fmt.Printf("  %d) %s\n", i+1, label)
		}

		choice := readChoice(in, len(q.Options))
		if choice < 0 {
			fmt.Println("\nquiz abandoned")
			return subcommands.ExitSuccess
		}

		correct, finished := session.Answer(q.Options[choice].ID)
		if correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Wrong. %s = %s\n", q.Word.Term, q.Word.Meaning)
		}
		// short pause so the feedback registers before the next question
		time.Sleep(time.Second)

		if finished {
			break
		}
	}

	fmt.Printf("\nFinal score: %d\n", session.Score)
	return subcommands.ExitSuccess
}

// readChoice reads a 1-based option number from in; -1 on EOF.
func readChoice(in *bufio.Scanner, max int) int {
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return -1
		}
		n, err := strconv.Atoi(in.Text())
		if err == nil && n >= 1 && n <= max {
			return n - 1
		}
		fmt.Printf("enter a number between 1 and %d\n", max)
	}
}
