package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/clxns/hashtable"
	"github.com/npillmayer/clxns/pqueue"
	"github.com/npillmayer/clxns/resizearray"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintArray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clxns")
	defer teardown()
	//
	ra := resizearray.New(0)
	ra.Add("Hello")
	ra.Add("World")
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, ra, nil))
	t.Logf("\n%s", buf.String())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "   0 Hello", lines[0])
	assert.Equal(t, "   1 World", lines[1])
	assert.Contains(t, lines[2], "2 items")
}

func TestFprintTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clxns")
	defer teardown()
	//
	ht := hashtable.New(0)
	ht.Add("key", "value")
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, ht, &Config{}))
	assert.Contains(t, buf.String(), "key = value")
}

func TestFprintLimits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "clxns")
	defer teardown()
	//
	pq := pqueue.NewMin(0, func(a, b any) int {
		return strings.Compare(a.(string), b.(string))
	})
	for _, s := range []string{"ccccccccccccccccccccc", "bbb", "aaa"} {
		pq.Add(s)
	}
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, pq, &Config{LineWidth: 15, MaxItems: 2}))
	t.Logf("\n%s", buf.String())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "   0 aaa", lines[0])
	assert.Equal(t, "   1 bbb", lines[1])
	assert.Equal(t, "…", lines[2])
	assert.Equal(t, 3, pq.Count(), "dumping must not consume the queue")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "abc", clip("abc", 0))
	assert.Equal(t, "abc", clip("abc", 3))
	assert.Equal(t, "a…", clip("abc", 2))
}

func TestConfigFromTerminal(t *testing.T) {
	config := ConfigFromTerminal()
	require.NotNil(t, config)
	assert.GreaterOrEqual(t, config.LineWidth, 10)
}
