package markdownx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	out := ToHTML([]byte("## Band gap\n\nThe **predicted** value, see `eV`.\n\n- MA\n- Cs\n"))

	assert.Contains(t, out, `<h2 class="mt-6 mb-3 font-semibold text-xl"`)
	assert.Contains(t, out, `<p class="my-2 text-slate-300">`)
	assert.Contains(t, out, `<strong class="text-slate-100">predicted</strong>`)
	assert.Contains(t, out, `<code class="px-1 rounded bg-slate-700 text-amber-300">eV</code>`)
	assert.Contains(t, out, `<li class="ml-4 my-1">`)
}

func TestToHTMLLinks(t *testing.T) {
	out := ToHTML([]byte("[docs](https://example.com)"))
	assert.Contains(t, out, `<a class="text-blue-400" href="https://example.com"`)
	assert.Contains(t, out, `target="_blank"`)
}
