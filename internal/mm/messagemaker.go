//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	MSGMAND              = -1
	MSGCRIT              = 0
	MSGWARN              = 1
	MSGNOTE              = 2
	MSGFYI               = 3
	MSGPEEK              = 4
	MSGTMI               = 5
	TIMETRACKERMSGTHRESH = MSGFYI
	PANIC                = "[%s v.%s] UNRECOVERABLE ERROR"
	PANIC2               = "[%s v.%s] (%s) UNRECOVERABLE ERROR"
)

var (
	colortags = regexp.MustCompile(`C([1-7])(.*?)C0`)
	styletags = regexp.MustCompile(`S([1-5])(.*?)S0`)

	// ANSI-256 values: Gold3, SkyBlue1, DeepSkyBlue2, Chartreuse3, Red3, Grey42, HotPink3
	palette = map[string]lipgloss.Color{
		"1": lipgloss.Color("178"),
		"2": lipgloss.Color("117"),
		"3": lipgloss.Color("38"),
		"4": lipgloss.Color("70"),
		"5": lipgloss.Color("160"),
		"6": lipgloss.Color("242"),
		"7": lipgloss.Color("168"),
	}

	levelcolor = map[int]lipgloss.Color{
		MSGMAND: lipgloss.Color("70"),
		MSGCRIT: lipgloss.Color("160"),
		MSGWARN: lipgloss.Color("143"),
		MSGNOTE: lipgloss.Color("178"),
		MSGFYI:  lipgloss.Color("117"),
		MSGPEEK: lipgloss.Color("68"),
		MSGTMI:  lipgloss.Color("242"),
	}
)

type MessageMaker struct {
	Lnc  time.Time
	BW   bool
	Clr  string // the caller, if any; reported by EC()
	LLvl int
	LNm  string
	SNm  string
	Ver  string
	Win  bool
	log  *zap.Logger
	mtx  sync.Mutex
}

// NewMessageMaker - a MessageMaker writing to stdout
func NewMessageMaker(lname, sname, ver string, lvl int, bw bool) *MessageMaker {
	return &MessageMaker{
		Lnc:  time.Now(),
		BW:   bw,
		LLvl: lvl,
		LNm:  lname,
		SNm:  sname,
		Ver:  ver,
		Win:  runtime.GOOS == "windows",
	}
}

// SetOutput - send everything to ws instead of stdout
func (m *MessageMaker) SetOutput(ws zapcore.WriteSyncer) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.log = newconsolelogger(ws)
}

// Logger - the underlying zap logger
func (m *MessageMaker) Logger() *zap.Logger {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.log == nil {
		m.log = newconsolelogger(zapcore.Lock(os.Stdout))
	}
	return m.log
}

func newconsolelogger(ws zapcore.WriteSyncer) *zap.Logger {
	// the prefix and the colors are ours: zap only has to get the line out
	ec := zap.NewDevelopmentEncoderConfig()
	ec.TimeKey = ""
	ec.LevelKey = ""
	ec.CallerKey = ""
	ec.NameKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), ws, zapcore.DebugLevel)
	return zap.New(core)
}

func (m *MessageMaker) plain() bool {
	return m.Win || m.BW
}

// Emit - send a message to the terminal, perhaps adding color and style to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[DR] StripGutenberg(): no start marker in 'pg600.txt'"
	if m.LLvl < threshold {
		return
	}

	prefix := fmt.Sprintf("[%s] ", m.SNm)
	if !m.plain() {
		c, ok := levelcolor[threshold]
		if !ok {
			c = lipgloss.Color("255")
		}
		prefix = "[" + lipgloss.NewStyle().Foreground(palette["1"]).Render(m.SNm) + "] "
		message = lipgloss.NewStyle().Foreground(c).Render(message)
	}

	l := m.Logger()
	switch threshold {
	case MSGCRIT:
		l.Error(prefix + message)
	case MSGWARN:
		l.Warn(prefix + message)
	case MSGPEEK, MSGTMI:
		l.Debug(prefix + message)
	default:
		l.Info(prefix + message)
	}
}

// Color - color text by swapping out pseudo-tags
func (m *MessageMaker) Color(tagged string) string {
	// "[git: C4%sC0]" ==> green text for the %s
	return colortags.ReplaceAllStringFunc(tagged, func(s string) string {
		sm := colortags.FindStringSubmatch(s)
		if m.plain() {
			return sm[2]
		}
		return lipgloss.NewStyle().Foreground(palette[sm[1]]).Render(sm[2])
	})
}

// Styled - style text by swapping out pseudo-tags
func (m *MessageMaker) Styled(tagged string) string {
	return styletags.ReplaceAllStringFunc(tagged, func(s string) string {
		sm := styletags.FindStringSubmatch(s)
		if m.plain() {
			return sm[2]
		}
		st := lipgloss.NewStyle()
		switch sm[1] {
		case "1":
			st = st.Bold(true)
		case "2":
			st = st.Italic(true)
		case "3":
			st = st.Underline(true)
		case "4":
			st = st.Strikethrough(true)
		case "5":
			st = st.Reverse(true)
		}
		return st.Render(sm[2])
	})
}

func (m *MessageMaker) ColStyle(tagged string) string {
	return m.Styled(m.Color(tagged))
}

// EC - report error and the caller; then exit
func (m *MessageMaker) EC(err error) {
	if err == nil {
		return
	}
	head := fmt.Sprintf(PANIC, m.LNm, m.Ver)
	if m.Clr != "" {
		head = fmt.Sprintf(PANIC2, m.LNm, m.Ver, m.Clr)
	}
	m.Emit(head, MSGMAND)
	m.Emit(err.Error(), MSGMAND)
	m.ExitOrHang(1)
}

// ExitOrHang - Windows should hang to keep the error visible before the window closes and hides it
func (m *MessageMaker) ExitOrHang(e int) {
	const (
		HANG = `Execution suspended. %s is now frozen. Note any errors above. Execution will halt after %d seconds.`
		SUSP = 60
	)
	m.Sync()
	if m.Win {
		m.Emit(fmt.Sprintf(HANG, m.LNm, SUSP), MSGMAND)
		time.Sleep(SUSP * time.Second)
	}
	os.Exit(e)
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	// sample output: "[B2: 3.764s][Δ: 1.024s] sentiment scored for 'wells'"
	d := fmt.Sprintf("[Δ: %.3fs] ", time.Since(previous).Seconds())
	o = fmt.Sprintf("[%s: %.3fs]", letter, time.Since(start).Seconds()) + d + o
	m.Emit(o, TIMETRACKERMSGTHRESH)
}

// Sync - flush the logger
func (m *MessageMaker) Sync() {
	_ = m.Logger().Sync()
}
