//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func newtestmaker(lvl int) (*MessageMaker, *bytes.Buffer) {
	var buf bytes.Buffer
	m := NewMessageMaker("Tester", "TT", "0.0.1", lvl, true)
	m.SetOutput(zapcore.AddSync(&buf))
	return m, &buf
}

func TestEmitRespectsThreshold(t *testing.T) {
	m, buf := newtestmaker(MSGNOTE)
	m.Emit("loud", MSGCRIT)
	m.Emit("medium", MSGNOTE)
	m.Emit("quiet", MSGTMI)

	out := buf.String()
	assert.Contains(t, out, "[TT] loud")
	assert.Contains(t, out, "[TT] medium")
	assert.NotContains(t, out, "quiet")
}

func TestTagsVanishInBlackAndWhite(t *testing.T) {
	m, _ := newtestmaker(MSGNOTE)
	assert.Equal(t, "[git: abc]", m.Color("[git: C4abcC0]"))
	assert.Equal(t, "bold and plain", m.Styled("S1boldS0 and plain"))
	assert.Equal(t, "v1 x", m.ColStyle("S1C2v1C0S0 x"))
}

func TestTimer(t *testing.T) {
	m, buf := newtestmaker(MSGFYI)
	start := time.Now()
	m.Timer("A1", "stage done", start, start)
	assert.Contains(t, buf.String(), "[A1: ")
	assert.Contains(t, buf.String(), "stage done")
}

func TestECIgnoresNil(t *testing.T) {
	m, buf := newtestmaker(MSGTMI)
	m.EC(nil)
	assert.Empty(t, buf.String())
}
