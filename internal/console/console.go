// Package console plays rounds over a line-oriented terminal.
//
// Every input line is a submission, except the commands:
//
//	:new    start a new round (new root word, words and score cleared)
//	:reset  clear words and score, keep the root word
//	:quit   leave
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
)

// NewRoundFunc starts a round; the play command binds it to random or daily selection.
type NewRoundFunc func() (game.Session, error)

// Game is one terminal session.
type Game struct {
	validator *game.Validator
	newRound  NewRoundFunc
	out       io.Writer
	sess      game.Session
}

// New returns a Game writing to out.
func New(v *game.Validator, newRound NewRoundFunc, out io.Writer) *Game {
	return &Game{validator: v, newRound: newRound, out: out}
}

// Session returns the current round state.
func (g *Game) Session() game.Session { return g.sess }

// Run starts a round and processes lines from in until EOF, :quit or ctx is done.
// Only a failure to start a round is returned as an error.
func (g *Game) Run(ctx context.Context, in io.Reader) error {
	if err := g.launch(); err != nil {
		return err
	}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case ":quit", ":q":
			fmt.Fprintf(g.out, "Final score: %d\n", g.sess.DisplayScore())
			return nil
		case ":new":
			if err := g.launch(); err != nil {
				return err
			}
		case ":reset":
			g.sess = g.sess.Reset("")
			g.printRound()
		default:
			g.Submit(line)
		}
	}
	return sc.Err()
}

// Submit evaluates one raw line and prints the outcome.
func (g *Game) Submit(raw string) game.Result {
	next, res := g.validator.Evaluate(g.sess, raw)
	switch res.Status {
	case game.StatusRejected:
		log.Debug().Str("word", res.Word).Str("kind", res.Err.Kind.String()).Msg("word rejected")
		fmt.Fprintf(g.out, "%s: %s\n", res.Err.Title, res.Err.Message)
	case game.StatusAccepted:
		log.Debug().Str("word", res.Word).Msg("word accepted")
		g.sess = next
		g.printWords()
	}
	return res
}

func (g *Game) launch() error {
	sess, err := g.newRound()
	if err != nil {
		return fmt.Errorf("start round: %w", err)
	}
	g.sess = sess
	g.printRound()
	return nil
}

func (g *Game) printRound() {
	fmt.Fprintf(g.out, "== %s ==\n", g.sess.RootWord)
	fmt.Fprintln(g.out, "Enter your word (:new, :reset, :quit)")
}

func (g *Game) printWords() {
	for _, w := range g.sess.UsedWords {
		fmt.Fprintf(g.out, "  (%d) %s\n", len([]rune(w)), w)
	}
	fmt.Fprintf(g.out, "Score is: %d\n", g.sess.DisplayScore())
}
