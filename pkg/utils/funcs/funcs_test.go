package funcs

import (
	"bytes"
	"html/template"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFuncMap(t *testing.T) {
	tmpl, err := template.New("t").Funcs(NewFuncMap()).Parse(`{{ curYear }} {{ upper .name }}`)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, tmpl.Execute(buf, map[string]any{"name": "cs"}))
	assert.Equal(t, strconv.Itoa(time.Now().Year())+" CS", buf.String())
}
