//
// corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
// Copyright (c) 2026 corvid contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package uci is the universal chess protocol front end: it parses the text
// commands a GUI sends on stdin, drives a search.Search accordingly, and
// renders its protocol.Driver callbacks back out as "info"/"bestmove" lines.
// It is an external collaborator of the search core (spec.md §1), not part
// of it.
package uci

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/evaluator"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/protocol"
	"github.com/corvidchess/corvid/internal/search"
	. "github.com/corvidchess/corvid/internal/types"
)

// engineName and engineAuthor answer the "uci" handshake.
const (
	engineName   = "corvid"
	engineAuthor = "corvid contributors"
)

// Handler owns the protocol loop: it reads commands, maintains the current
// position, and starts/stops/ponder-hits the one Search live at a time. It
// implements protocol.Driver so the search it owns reports straight back to
// its own stdout writer.
type Handler struct {
	in  *bufio.Scanner
	out *bufio.Writer

	log    *logging.Logger
	uciLog *logging.Logger

	mg   *movegen.Movegen
	pos  *position.Position
	eval *evaluator.Evaluator
	srch *search.Search
}

// New returns a Handler reading from stdin and writing to stdout.
func New() *Handler {
	h := &Handler{
		in:     bufio.NewScanner(os.Stdin),
		out:    bufio.NewWriter(os.Stdout),
		log:    myLogging.GetLog(),
		uciLog: myLogging.GetUciLog(),
		mg:     movegen.New(),
		pos:    position.New(),
		eval:   evaluator.New(),
	}
	h.in.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	h.newSearch()
	return h
}

// newSearch replaces srch with a fresh single-use Search bound to h (spec.md
// §5: a Search is a one-shot worker, not reusable across games/positions).
func (h *Handler) newSearch() {
	h.srch = search.New(h, h.eval)
}

// Loop runs the protocol loop until "quit" is received.
func (h *Handler) Loop() {
	for h.in.Scan() {
		if h.handle(h.in.Text()) {
			return
		}
	}
}

// Command processes a single command line and returns everything it wrote,
// for tests that drive the handler without a real stdin/stdout pair.
func (h *Handler) Command(cmd string) string {
	saved := h.out
	buf := new(bytes.Buffer)
	h.out = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.out.Flush()
	h.out = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

// handle dispatches one command line and reports whether "quit" was seen.
func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	h.uciLog.Infof("<< %s", cmd)
	tokens := whitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		if h.srch.IsSearching() {
			h.srch.Stop()
		}
		return true
	case "uci":
		h.send("id name " + engineName)
		h.send("id author " + engineAuthor)
		h.sendOptions()
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "setoption":
		h.setOptionCommand(tokens)
	case "ucinewgame":
		if h.srch.IsSearching() {
			h.srch.Stop()
		}
		h.pos = position.New()
		h.newSearch()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.srch.Stop()
	case "ponderhit":
		h.srch.PonderHit()
	default:
		h.log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfoString("position command malformed")
		return
	}
	fen := position.StartFen
	i := 1
	switch tokens[1] {
	case "startpos":
		i = 2
	case "fen":
		var b strings.Builder
		i = 2
		for i < len(tokens) && tokens[i] != "moves" {
			b.WriteString(tokens[i])
			b.WriteString(" ")
			i++
		}
		if trimmed := strings.TrimSpace(b.String()); trimmed != "" {
			fen = trimmed
		}
	default:
		h.sendInfoString("position command malformed: " + tokens[1])
		return
	}

	p, err := position.NewFen(fen)
	if err != nil {
		h.sendInfoString("invalid fen: " + err.Error())
		return
	}
	h.pos = p

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := h.mg.MoveFromUci(h.pos, tokens[i])
			if !m.IsValid() {
				h.sendInfoString("invalid move in position command: " + tokens[i])
				return
			}
			h.pos.DoMove(m)
		}
	}
}

// uciCheckOptions lists the boolean "setoption"-tunable search knobs this
// module actually consults (spec.md §4.9/§9 ponder; alphabeta.go's
// quiescence/stand-pat gating), matching the teacher's Ponder/Quiescence
// check-type option entries in ucioption.go without replicating the rest of
// its registry, which gates subsystems (TT, LMR, null-move, ...) this
// module's search core doesn't implement.
var uciCheckOptions = map[string]*bool{
	"Ponder":     &config.Settings.Search.UsePonder,
	"Quiescence": &config.Settings.Search.UseQuiescence,
	"QSStandpat": &config.Settings.Search.UseQSStandpat,
}

// sendOptions advertises the tunable options above during the "uci"
// handshake, one "option" line per entry.
func (h *Handler) sendOptions() {
	for _, name := range []string{"Ponder", "Quiescence", "QSStandpat"} {
		cur := *uciCheckOptions[name]
		h.send(fmt.Sprintf("option name %s type check default %t", name, cur))
	}
}

// setOptionCommand handles "setoption name <Name> value <true|false>" for
// the checkbox options in uciCheckOptions.
func (h *Handler) setOptionCommand(tokens []string) {
	var name, value string
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "name":
			if i+1 < len(tokens) {
				i++
				name = tokens[i]
			}
		case "value":
			if i+1 < len(tokens) {
				i++
				value = tokens[i]
			}
		}
	}
	opt, ok := uciCheckOptions[name]
	if !ok {
		h.sendInfoString("unknown option: " + name)
		return
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		h.sendInfoString("invalid value for option " + name + ": " + value)
		return
	}
	*opt = v
}

func (h *Handler) goCommand(tokens []string) {
	if h.srch.IsSearching() {
		h.sendInfoString("search already running")
		return
	}
	limits, err := h.readSearchLimits(tokens)
	if err != nil {
		h.sendInfoString(err.Error())
		return
	}
	h.newSearch()
	h.srch.Start(h.pos, limits)
}

// readSearchLimits parses the tokens following "go" into a search.Limits,
// grounded on the teacher's go-command token switch (searchmoves/ponder/
// wtime/btime/winc/binc/movestogo/depth/nodes/movetime/infinite).
func (h *Handler) readSearchLimits(tokens []string) (search.Limits, error) {
	var (
		ponder               bool
		infinite             bool
		depth                int
		nodes                uint64
		moveTime             time.Duration
		whiteTime, blackTime time.Duration
		whiteInc, blackInc   time.Duration
		movesToGo            int
		haveClock            bool
		moves                = moveslice.New(32)
	)

	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "searchmoves":
			i++
			for i < len(tokens) && !isGoKeyword(tokens[i]) {
				m := h.mg.MoveFromUci(h.pos, tokens[i])
				if m.IsValid() {
					moves.PushBack(m)
				}
				i++
			}
			continue
		case "ponder":
			// Ignore a "go ponder" request when the Ponder UCI option has
			// been switched off (spec.md §3 "ponder"; config.Settings
			// .Search.UsePonder, set via "setoption name Ponder").
			ponder = config.Settings.Search.UsePonder
		case "infinite":
			infinite = true
		case "depth":
			i++
			depth = atoiOr(tokens, i, 0)
		case "nodes":
			i++
			nodes = uint64(atoiOr(tokens, i, 0))
		case "movetime":
			i++
			moveTime = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "wtime":
			i++
			whiteTime = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
			haveClock = true
		case "btime":
			i++
			blackTime = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
			haveClock = true
		case "winc":
			i++
			whiteInc = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "binc":
			i++
			blackInc = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "movestogo":
			i++
			movesToGo = atoiOr(tokens, i, 0)
		}
		i++
	}

	switch {
	case infinite:
		return search.NewInfiniteSearch(), nil
	case moves.Len() > 0:
		return search.NewMovesSearch(*moves)
	case depth > 0:
		return search.NewDepthSearch(depth)
	case nodes > 0:
		return search.NewNodesSearch(nodes)
	case moveTime > 0:
		return search.NewTimeSearch(moveTime)
	case ponder:
		return search.NewPonderSearch(whiteTime, blackTime, whiteInc, blackInc, movesToGo)
	case haveClock:
		return search.NewClockSearch(whiteTime, blackTime, whiteInc, blackInc, movesToGo)
	default:
		return search.Limits{}, errors.New("go command: no valid search limit given")
	}
}

var goKeywords = map[string]bool{
	"ponder": true, "wtime": true, "btime": true, "winc": true, "binc": true,
	"movestogo": true, "depth": true, "nodes": true, "mate": true,
	"movetime": true, "infinite": true,
}

func isGoKeyword(tok string) bool { return goKeywords[tok] }

func atoiOr(tokens []string, i, def int) int {
	if i < 0 || i >= len(tokens) {
		return def
	}
	n, err := strconv.Atoi(tokens[i])
	if err != nil {
		return def
	}
	return n
}

func (h *Handler) sendInfoString(msg string) {
	h.log.Warning(msg)
	h.send("info string " + msg)
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.out.WriteString(s + "\n")
	_ = h.out.Flush()
}

// SendInfo implements protocol.Driver (spec.md §4.8).
func (h *Handler) SendInfo(info protocol.Info) {
	var b strings.Builder
	fmt.Fprintf(&b, "info depth %d seldepth %d score %s nodes %d nps %d time %d",
		info.Depth, info.SelDepth, info.Value.String(), info.Nodes, info.Nps, info.Time.Milliseconds())
	if info.Pv.Len() > 0 {
		b.WriteString(" pv ")
		b.WriteString(info.Pv.StringUci())
	}
	h.send(b.String())
}

// SendCurrentMove implements protocol.Driver.
func (h *Handler) SendCurrentMove(move Move, moveNumber int) {
	h.send(fmt.Sprintf("info currmove %s currmovenumber %d", move.StringUci(), moveNumber))
}

// SendBestMove implements protocol.Driver.
func (h *Handler) SendBestMove(result protocol.BestMove) {
	if result.Move == NoMove {
		h.send("bestmove (none)")
		return
	}
	if result.PonderMove != NoMove {
		h.send(fmt.Sprintf("bestmove %s ponder %s", result.Move.StringUci(), result.PonderMove.StringUci()))
		return
	}
	h.send("bestmove " + result.Move.StringUci())
}
